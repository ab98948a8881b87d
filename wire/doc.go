// Package wire provides the big-endian field codec used by P-chain
// transactions.
//
// Transactions are a flat sequence of fixed width fields. There are no
// per-field headers: the schema (the calling type) knows what comes next and
// asks the Decoder for it. Variable length data is always preceded by a u32
// count.
//
//	| Field         | Layout                          |
//	|---------------|---------------------------------|
//	| u32           | 4 bytes, big-endian             |
//	| u64           | 8 bytes, big-endian             |
//	| fixed [N]     | N raw bytes                     |
//	| bytes         | u32 length, then length bytes   |
//	| list of T     | u32 count, then count × T       |
//	| typed value   | u32 type id, then the type body |
//
// The Decoder never copies: Bytes returns sub-slices of the input, and
// Remaining returns whatever the schema did not consume. Errors are sticky;
// once a read fails every later read fails with the same error.
package wire
