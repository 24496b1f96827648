/*
Package pagestore reads page-oriented stores: files made of fixed 4096-byte
blocks which are linked into type-tagged chains of keyed records.

Data Structure Documentation

Store

A store begins with a header page, followed by any number of blocks. Blocks
belong to chains and are addressed by index, the byte offset of a block is
its index multiplied by the page size.

    Store layout:
    +-------------------+---------+---------+---------+
    | header (block 0)  | block 1 |   ...   | block n |
    +-------------------+---------+---------+---------+

    Header:
    +-----------------+-------------------+--------------------------+--------------------------+---------------------------+
    | magic (8 bytes) | version (4 bytes) | property index (4 bytes) | category index (4 bytes) | item-kind index (4 bytes) |
    +-----------------+-------------------+--------------------------+--------------------------+---------------------------+

Block

Each block starts with a meta record, followed by the record payload. The
next block index links the block to its successor, 0xFFFFFFFF terminates
the chain.

    Block layout:
    +---------------+-------------------+---------+-------------------+---------+
    | meta (16 b)   | record 1          |   ...   | record n          | padding |
    +---------------+-------------------+---------+-------------------+---------+

    Meta:
    +------------------+--------------------------+----------------------------+------------------------------+
    | type (4 bytes)   | next block index (4 b)   | record count (4 bytes)     | payload length (4 bytes)     |
    +------------------+--------------------------+----------------------------+------------------------------+

Record

A record is a key followed by a type specific value.

    Property record:
    +--------------+---------------+-----------------------+------------------+-----------------------+------------------+
    | key (varint) | type (varint) | name length (varint)  | name (varlen)    | data length (varint)  | data (varlen)    |
    +--------------+---------------+-----------------------+------------------+-----------------------+------------------+

    Category record:
    +--------------+-----------------+-----------------------+---------------+-------------------+-----------------+-------+
    | key (varint) | parent (varint) | name length (varint)  | name (varlen) | count (varint)    | prop 1 (varint) |  ...  |
    +--------------+-----------------+-----------------------+---------------+-------------------+-----------------+-------+

VarInt

Integers are self-delimiting. The number of leading 1-bits in the first byte
is the number of bytes that follow, stored big-endian. When between 1 and 4
bytes follow, the remaining bits of the first byte form the most significant
part of the value.

    +--------------+------+-------------------------------------+
    | first byte   | more | value bits                          |
    +--------------+------+-------------------------------------+
    | 0xxxxxxx     | 0    | 7                                   |
    | 10xxxxxx     | 1    | 6 + 8                               |
    | 110xxxxx     | 2    | 5 + 16                              |
    | 1110xxxx     | 3    | 4 + 24                              |
    | 11110xxx     | 4    | 3 + 32                              |
    | 11111xxx     | 5..8 | 8 * more (first byte bits ignored)  |
    +--------------+------+-------------------------------------+
*/
package pagestore
