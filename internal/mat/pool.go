// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mat

import (
	"runtime"
	"sync"
)

// Pool of constant sized byte arrays, to reduce memory allocation overhead
// when the same image shape is filtered over and over
var poolByte = struct {
	sync.RWMutex
	m map[int]*sync.Pool
}{m: make(map[int]*sync.Pool)}

// Clears the memory pool and triggers garbage collection
func ClearPools() {
	poolByte.Lock()
	poolByte.m = make(map[int]*sync.Pool)
	poolByte.Unlock()
	runtime.GC()
}

// Returns a pool for byte arrays of the given size
func getSizedPoolByte(size int) *sync.Pool {
	poolByte.RLock()
	pool := poolByte.m[size]
	poolByte.RUnlock()
	if pool != nil {
		return pool
	}
	poolByte.Lock()
	defer poolByte.Unlock()
	if pool = poolByte.m[size]; pool == nil {
		pool = &sync.Pool{
			New: func() interface{} {
				return make([]byte, size)
			},
		}
		poolByte.m[size] = pool
	}
	return pool
}

// Retrieves an array of given size from the pool. Contents are undefined
func GetBytes(size int) []byte {
	return getSizedPoolByte(size).Get().([]byte)
}

// Returns an array to the pool
func PutBytes(arr []byte) {
	getSizedPoolByte(cap(arr)).Put(arr[:cap(arr)])
}
