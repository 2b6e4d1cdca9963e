package semx

import (
	"strings"
	"sync"

	"github.com/llxisdsh/pb"
)

// OpenFlag controls SemOpen.
type OpenFlag int

const (
	// OCreat creates the semaphore if it does not exist.
	OCreat OpenFlag = 1 << iota
	// OExcl with OCreat fails with EEXIST if the semaphore exists.
	OExcl
)

// NameMax is the longest accepted semaphore name, leading slash included.
const NameMax = 251

type namedSem struct {
	sem      Semaphore
	name     string
	mu       sync.Mutex
	refs     int
	unlinked bool
}

var (
	namedByName   pb.MapOf[string, *namedSem]
	namedByHandle pb.MapOf[*Semaphore, *namedSem]
)

func validName(name string) bool {
	return len(name) > 1 && len(name) <= NameMax &&
		name[0] == '/' && !strings.Contains(name[1:], "/")
}

// SemOpen returns a handle to the named semaphore, creating it with value
// when OCreat is set and it does not exist yet. value is only checked when
// the semaphore is created. Every successful open must
// be paired with SemClose. Names look like "/name".
func SemOpen(name string, flags OpenFlag, value uint32) (*Semaphore, error) {
	if !validName(name) {
		return nil, EINVAL
	}
	create := flags&OCreat != 0
	var err error
	ns, opened := namedByName.ProcessEntry(
		name,
		func(l *pb.EntryOf[string, *namedSem]) (*pb.EntryOf[string, *namedSem], *namedSem, bool) {
			if l != nil {
				if create && flags&OExcl != 0 {
					err = EEXIST
					return l, nil, false
				}
				l.Value.mu.Lock()
				l.Value.refs++
				l.Value.mu.Unlock()
				return l, l.Value, true
			}
			if !create {
				err = ENOENT
				return nil, nil, false
			}
			n := &namedSem{name: name, refs: 1}
			if err = n.sem.Init(value); err != nil {
				return nil, nil, false
			}
			return &pb.EntryOf[string, *namedSem]{Value: n}, n, true
		},
	)
	if !opened {
		return nil, err
	}
	namedByHandle.Store(&ns.sem, ns)
	return &ns.sem, nil
}

// SemClose drops a handle returned by SemOpen. The semaphore is destroyed
// once it has been unlinked and every handle is closed.
func SemClose(sem *Semaphore) error {
	ns, ok := namedByHandle.Load(sem)
	if !ok {
		return EINVAL
	}
	ns.mu.Lock()
	if ns.refs == 0 {
		ns.mu.Unlock()
		return EINVAL
	}
	ns.refs--
	last := ns.refs == 0
	destroy := last && ns.unlinked
	ns.mu.Unlock()

	if destroy {
		namedByHandle.Delete(sem)
		return ns.sem.Destroy()
	}
	return nil
}

// SemUnlink removes name. Open handles stay usable; the semaphore is
// destroyed when the last of them is closed. A later SemOpen with OCreat
// creates a new semaphore.
func SemUnlink(name string) error {
	if !validName(name) {
		return EINVAL
	}
	ns, ok := namedByName.ProcessEntry(
		name,
		func(l *pb.EntryOf[string, *namedSem]) (*pb.EntryOf[string, *namedSem], *namedSem, bool) {
			if l == nil {
				return nil, nil, false
			}
			return nil, l.Value, true
		},
	)
	if !ok {
		return ENOENT
	}
	ns.mu.Lock()
	ns.unlinked = true
	destroy := ns.refs == 0
	ns.mu.Unlock()

	if destroy {
		namedByHandle.Delete(&ns.sem)
		return ns.sem.Destroy()
	}
	return nil
}
