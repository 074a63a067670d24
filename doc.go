// Package hashtab implements an open addressing hash table with buckets
// close to one cache line in size. It's designed for speed and low memory
// overhead and provides lookups that touch a single bucket in most cases.
// Features:
//
//   - Incremental rehashing using two tables.
//
//   - Stateless iteration using Scan.
//
//   - The table stores a single element per slot, of a caller-chosen generic
//     type, rather than key/value pairs. Using it as a set is straightforward.
//     Using it as a key/value store requires combining key and value into an
//     element and supplying a Type that knows how to extract the key.
//
//   - The element type, key type, hash function and other properties are
//     configurable through a Type descriptor supplied when creating a table.
//
// Credits
//
// The design of the cache-line aware open addressing scheme is inspired by
// tricks used in Swiss tables (Sam Benzaquen, Alkis Evlogimenos, Matt
// Kulukundis, and Roman Perepelitsa et al.). The incremental rehashing using
// two tables, though originally for a chaining hash table, was designed by
// Salvatore Sanfilippo. The original scan algorithm (for a chained hash
// table) was designed by Pieter Noordhuis. The incremental rehashing and the
// scan algorithm were adapted for the open addressing scheme, including the
// use of reverse-bit cursor probing, by Viktor Söderqvist.
package hashtab
