// Package graphanon anonymizes labelled social-network graphs against
// neighborhood-attribute disclosure: it inserts edges until every
// vertex's closed-neighborhood label mix sits within alpha of the
// global mix, so no neighborhood betrays its owner's label.
//
// 🚀 What is graphanon?
//
//	A deterministic anonymization toolkit that brings together:
//		• Labelled substrate: fixed-n undirected graphs, add-only edges
//		• Distribution math: total-variation, Hellinger, Jensen–Shannon
//		• Proximity audits: worst-vertex verdicts & per-vertex exposure profiles
//		• Repair strategies: randomized (Hopeful) & deficiency matching (Greedy)
//		• Text codec and a CLI: generate, check, anonymize
//
// ✨ Why choose graphanon?
//
//   - Privacy with a dial: alpha trades disclosure risk against distortion
//   - Seed-driven determinism: every stochastic step replays exactly
//   - Explicit errors: sentinel-first API, errors.Is everywhere
//   - Pure Go, offline: flat files in, flat files out
//
// Under the hood, everything is organized under five subpackages:
//
//	core/      — labelled Graph substrate (edges, labels, histograms, Clone)
//	dist/      — label-distribution metrics & deficiency masks
//	anonymize/ — audits (IsAlphaProximal, Exposure) & repairs (Hopeful, Greedy)
//	codec/     — text serialization (Parse, Write)
//	builder/   — canonical topologies (Complete, Random)
//
// plus cmd/graphanon, the command-line driver.
//
// Quick ASCII example:
//
//	    0───1        labels: 0,0,1,1
//	                 every vertex sees only its own label,
//	    2───3        so every neighborhood leaks
//
//	two cross edges later (0─2, 1─3), each neighborhood mixes both
//	labels and the graph passes the alpha = 0.2 audit.
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/graphanon
package graphanon
