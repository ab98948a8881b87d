// Package delegator decodes and displays the P-chain Add Permissionless
// Delegator transaction.
//
// A transaction goes through three steps during one approval flow:
//
//  1. Decode turns the untrusted buffer into a Tx. Decoding checks that the
//     stake outputs add up exactly to the validator weight; a Tx that exists
//     is a Tx that satisfies that.
//  2. SuppressMatching optionally hides change outputs. It must run before
//     anything is rendered.
//  3. NumItems and RenderItem step through the display items, one item and
//     one page at a time.
//
// Display items, in order:
//
//	| Items                      | Title                                   |
//	|----------------------------|-----------------------------------------|
//	| 1                          | Add Permissionless Delegator Transaction |
//	| visible base output items  | Transfer / Address / Funds locked       |
//	| 4                          | Validator / Start time / End time / Total stake(AVAX) |
//	| 1                          | SubnetID                                |
//	| visible stake output items | Stake / Address / Funds locked          |
//	| one per reward address     | Rewards to                              |
//	| 1                          | Fee(AVAX)                               |
//	|----------------------------|-----------------------------------------|
//
// A Tx is owned by one approval flow and is discarded when the flow ends. It
// is not safe for concurrent use.
package delegator
