// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/magiconair/properties"
)

// Files reads the given sources in order and returns their fixtures,
// preserving order. Any malformed source fails the whole batch.
func (l Loader) Files(paths ...string) ([]*Fixture, error) {
	out := make([]*Fixture, 0, len(paths))
	for _, path := range paths {
		src, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			return nil, &FormatError{Source: path, Err: err}
		}
		name := strings.TrimSuffix(filepath.Base(path), ".properties")
		f, err := l.Parse(name, src)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Family reads the numbered sources for one distribution family from
// dir. Sources are named test.<family>.<n>.properties with n counted
// from 1; reading stops at the first missing number. At least one
// source must exist.
func (l Loader) Family(dir, family string) ([]*Fixture, error) {
	var paths []string
	for n := 1; ; n++ {
		path := filepath.Join(dir, fmt.Sprintf("test.%s.%d.properties", family, n))
		if _, err := os.Stat(path); err != nil {
			break
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return nil, &FormatError{
			Source: family,
			Err:    fmt.Errorf("no fixture sources in %s", dir),
		}
	}
	return l.Files(paths...)
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string][]*Fixture)
)

// Cached is Family memoized on (dir, family). The first call loads
// the sources; later calls return the same fixtures for the life of
// the process. A load failure is not cached.
func (l Loader) Cached(dir, family string) ([]*Fixture, error) {
	key := dir + "\x00" + family
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if fs, ok := cache[key]; ok {
		return fs, nil
	}
	fs, err := l.Family(dir, family)
	if err != nil {
		return nil, err
	}
	cache[key] = fs
	return fs, nil
}

// LoadFamily reads a family's fixtures with a default Loader.
func LoadFamily(dir, family string) ([]*Fixture, error) {
	return Loader{}.Family(dir, family)
}

// Cached reads a family's fixtures with a default Loader, memoized
// for the life of the process.
func Cached(dir, family string) ([]*Fixture, error) {
	return Loader{}.Cached(dir, family)
}
