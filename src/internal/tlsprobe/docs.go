// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tlsprobe dials TLS endpoints and reports the negotiated
// protocol parameters (version, cipher, key exchange group, post-quantum
// status), per-stage timings, and the peer's certificates normalized
// through the x509model package. Endpoint strings are parsed leniently:
// literal address:port, URL, or bare hostname all work.
package tlsprobe
