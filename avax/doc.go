// Package avax provides the structures shared by P-chain transactions: ids,
// addresses, the transaction header, transferable outputs and inputs, the
// base transaction fields, validators, subnet ids and output owners.
//
// Every structure decodes itself from a wire.Decoder and, where it has
// something to show, renders itself one display item at a time. Values that
// render text which depends on the transaction (the address prefix, the
// native asset) take a Labels.
package avax
