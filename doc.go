// Package signalscope is your in-memory laboratory for transforming
// signals between digital and analog representations — from line coding
// primitives to carrier modulation and waveform quality metrics.
//
// 🚀 What is signalscope?
//
//	A deterministic, pure-computation library that brings together:
//		• Line coding: NRZ-L/NRZ-I, Manchester variants, AMI, Pseudoternary, B8ZS, HDB3
//		• Digital modulation: ASK, FSK, PSK, DPSK, QPSK, OQPSK, 8-PSK, 16-QAM, 4-FSK
//		• Analog sampling: PCM quantization and delta modulation staircases
//		• Analog modulation: AM, FM, PM carrier synthesis
//		• Quality metrics: RMSE, peak deviation, dynamic time warping distance
//		• Performance: scenario timing with statistical summaries
//
// ✨ Why choose signalscope?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical inputs always yield identical waveforms
//   - Pure engines – no logging, no I/O, failure only through errors
//   - Service-ready – a JSON/HTTP + WebSocket daemon ships under cmd/
//
// Under the hood, everything is organized per transformation family:
//
//	core/      — Point, SignalResult, waveform sampling & interpolation
//	linecode/  — digital→digital pulse shaping with substitution codes
//	modem/     — digital→analog carrier keying, binary and symbol schemes
//	sampling/  — analog→digital PCM and delta modulation
//	analogmod/ — analog→analog AM/FM/PM
//	convert/   — family dispatch & the transport-facing error taxonomy
//	quality/   — waveform comparison metrics (RMSE, max deviation, warping)
//	perf/      — scenario benchmarking with mean/stddev/P95 summaries
//
// Quick start:
//
//	res, err := linecode.Encode("10110", linecode.B8ZS, linecode.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(len(res.Transmitted), "transmitted points")
//
// Each package carries its own doc.go with contracts, error sentinels and
// complexity notes. Start at core/ if you are new to the data model.
//
//	go get github.com/signalscope/signalscope
package signalscope
