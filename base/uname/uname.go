// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package uname generates unique, auto-assigned handle names.
//
// Names are of the form "<prefix><n>" where n is monotonic per prefix and
// process-wide. The generator is safe for concurrent use: identifier
// creation is the one piece of state this module shares across goroutines
// without requiring the caller to hold a lock.
package uname

import (
	"fmt"
	"sync"
)

// Generator mints unique names from a prefix.
type Generator struct {
	mu   sync.Mutex
	next map[string]int
}

// New returns an empty name generator.
func New() *Generator {
	return &Generator{next: make(map[string]int)}
}

// Name returns the next unique name for prefix, e.g. the first call with
// "i" returns "i0", the second "i1", and so on. Counters are independent
// per prefix. Collisions with names supplied explicitly elsewhere (e.g. via
// a client-chosen label) are not tracked here and are the client's concern,
// per the identifier registry's contract.
func (g *Generator) Name(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := g.next[prefix]
	g.next[prefix] = n + 1
	return fmt.Sprintf("%s%d", prefix, n)
}
