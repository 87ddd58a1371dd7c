// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides pooled byte buffers that reduce garbage collection
// overhead for the inspector's I/O paths. It wraps [github.com/valyala/bytebufferpool]
// behind small interfaces so callers never depend on the pool implementation directly.
package gc
