// Package linecode implements the digital→digital transformation family:
// a bit sequence becomes a voltage-level line signal under one of eight
// classical line-coding schemes.
//
// 🚀 Supported schemes:
//
//   - NRZ-L          — level encodes the bit directly (+1 for 0, −1 for 1)
//   - NRZ-I          — level flips on every 1, holds on 0
//   - Manchester     — guaranteed mid-bit transition; 0 = high→low, 1 = low→high
//   - Diff-Manchester — mid-bit transition always; start-of-bit transition iff bit is 0
//   - AMI            — 0 → 0 V, 1 → alternating ±1 (marks alternate polarity)
//   - Pseudoternary  — mirror of AMI: 1 → 0 V, 0 → alternating ±1
//   - B8ZS           — AMI plus [0,0,0,V,B,0,V,B] substitution of 8-zero runs
//   - HDB3           — AMI plus 000V/B00V substitution of 4-zero runs
//
// Each scheme is a single left-to-right pass carrying the minimum state it
// needs (current level, last-mark polarity, mark counter). The substitution
// codes look ahead over the original bit slice, so overlapping candidate
// runs are never double-substituted.
//
// ⚙️ Usage:
//
//	res, err := linecode.Encode("10110", linecode.AMI, linecode.DefaultOptions())
//	// res.Input       — the square-wave rendering of the bits
//	// res.Transmitted — the encoded voltage levels
//	// res.Output      — identical to Input (decoding assumed perfect)
//
// Complexity: O(n) time, O(n) memory in the number of bits.
package linecode
