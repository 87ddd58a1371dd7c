// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509model normalizes decoded X.509 entities into flat,
// serialization-friendly structures ([SimpleCert], [SimpleCsr],
// [SimplePublicKey], [SimplePrivateKey]). The JSON shape is stable:
// snake_case field names, lowercase hex, key details flattened with a
// "type" discriminator, and optional fields omitted rather than nulled.
package x509model
