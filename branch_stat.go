package semx

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/vmihailenco/msgpack/v5"
)

type branch uint8

const (
	branchPostFast branch = iota
	branchPostSlow
	branchWaitFast
	branchWaitSlow
)

// BranchStats counts which branch the fast strategies took: the
// no-block branch or the one that signals or parks on the kernel object.
// Counting only happens in semx_branchstat builds.
type BranchStats struct {
	_ noCopy
	n [4]atomic.Uint64
}

// BranchSnapshot is a point-in-time copy of BranchStats.
type BranchSnapshot struct {
	PostFast uint64 `msgpack:"post_fast"`
	PostSlow uint64 `msgpack:"post_slow"`
	WaitFast uint64 `msgpack:"wait_fast"`
	WaitSlow uint64 `msgpack:"wait_slow"`
}

func (s BranchSnapshot) String() string {
	return fmt.Sprintf("post fast/slow %d/%d, wait fast/slow %d/%d",
		s.PostFast, s.PostSlow, s.WaitFast, s.WaitSlow)
}

func (b *BranchStats) record(br branch) {
	b.n[br].Add(1)
}

// Snapshot returns the current counters.
func (b *BranchStats) Snapshot() BranchSnapshot {
	return BranchSnapshot{
		PostFast: b.n[branchPostFast].Load(),
		PostSlow: b.n[branchPostSlow].Load(),
		WaitFast: b.n[branchWaitFast].Load(),
		WaitSlow: b.n[branchWaitSlow].Load(),
	}
}

// Reset zeroes the counters.
func (b *BranchStats) Reset() {
	for i := range b.n {
		b.n[i].Store(0)
	}
}

// Dump writes a msgpack-encoded Snapshot to w.
func (b *BranchStats) Dump(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(b.Snapshot())
}

// ReadBranchSnapshot decodes a snapshot written by Dump.
func ReadBranchSnapshot(r io.Reader) (BranchSnapshot, error) {
	var s BranchSnapshot
	err := msgpack.NewDecoder(r).Decode(&s)
	return s, err
}
