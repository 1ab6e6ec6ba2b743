// Package convert is the thin dispatch layer over the four transformation
// families: it routes a string-keyed request to the right engine, and
// classifies engine errors into the transport-facing taxonomy
// (invalid parameter / invalid input / unsupported scheme).
//
// The package holds no algorithmic logic of its own — each family package
// (linecode, modem, sampling, analogmod) owns its schemes — and stays
// transport-agnostic: callers may sit in-process, behind an RPC server, or
// inside a compiled-to-web module.
//
// ⚙️ Usage:
//
//	res, err := convert.Do(convert.Request{
//	    Family: convert.FamilyLineCoding,
//	    Scheme: "HDB3",
//	    Bits:   "110000001",
//	})
package convert
