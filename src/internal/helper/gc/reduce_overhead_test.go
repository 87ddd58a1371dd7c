// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBufferInterface verifies that the pooled buffer satisfies Buffer.
func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		check func(t *testing.T, buf Buffer)
	}{
		{
			name: "Write byte slice",
			setup: func(buf Buffer) {
				buf.Write([]byte("-----BEGIN CERTIFICATE-----"))
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "-----BEGIN CERTIFICATE-----", buf.String())
				assert.Equal(t, 27, buf.Len())
			},
		},
		{
			name: "WriteString and WriteByte",
			setup: func(buf Buffer) {
				buf.WriteString("pem block")
				buf.WriteByte('\n')
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "pem block\n", buf.String())
			},
		},
		{
			name: "ReadFrom",
			setup: func(buf Buffer) {
				_, err := buf.ReadFrom(strings.NewReader("streamed input"))
				require.NoError(t, err)
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, []byte("streamed input"), buf.Bytes())
			},
		},
		{
			name:  "Reset empties the buffer",
			setup: func(buf Buffer) { buf.WriteString("leftover"); buf.Reset() },
			check: func(t *testing.T, buf Buffer) {
				assert.Zero(t, buf.Len())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			tt.check(t, buf)
		})
	}
}

func TestBufferWriteTo(t *testing.T) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	buf.WriteString("payload")

	var out bytes.Buffer
	n, err := buf.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())
}

// Pool reuse must be safe under concurrent Get/Put.
func TestPoolConcurrency(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				buf := Default.Get()
				buf.WriteString("data")
				buf.Reset()
				Default.Put(buf)
			}
		}()
	}
	wg.Wait()
}
