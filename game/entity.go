package game

// Kind tags the typed record stored in an arena slot.
type Kind uint8

const (
	KindNone Kind = iota
	KindBall
	KindPaddle
	KindWall
)

// AgentKind distinguishes who drives a paddle.
type AgentKind uint8

const (
	AgentHuman AgentKind = iota
	AgentPredictive
)

// Handle is a generational reference into an Arena. Despawning a slot bumps
// its generation, so handles held across ticks resolve to nothing instead of
// aliasing whatever reuses the slot.
type Handle struct {
	idx uint32
	gen uint32
}

// NilHandle never resolves.
var NilHandle = Handle{}

// Entity is one typed record. Kind decides which fields are meaningful:
// balls carry Pos/Vel, walls carry Role, paddles carry Pos, Side and Agent.
type Entity struct {
	Kind  Kind
	Pos   Vec2
	Vel   Vec2
	Role  WallRole
	Side  Side
	Agent AgentKind
}

type slot struct {
	gen  uint32
	live bool
	ent  Entity
}

// Arena holds the match's entities behind generational handles.
type Arena struct {
	slots []slot
	free  []uint32
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) Spawn(e Entity) Handle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.live = true
		s.ent = e
		return Handle{idx: idx, gen: s.gen}
	}
	a.slots = append(a.slots, slot{gen: 1, live: true, ent: e})
	return Handle{idx: uint32(len(a.slots) - 1), gen: 1}
}

// Despawn releases the slot. Stale handles are a silent no-op.
func (a *Arena) Despawn(h Handle) {
	s := a.resolve(h)
	if s == nil {
		return
	}
	s.live = false
	s.gen++
	a.free = append(a.free, h.idx)
}

// Get resolves a handle to its record. Stale and nil handles report false.
func (a *Arena) Get(h Handle) (*Entity, bool) {
	s := a.resolve(h)
	if s == nil {
		return nil, false
	}
	return &s.ent, true
}

// Find returns the first live entity of the given kind.
func (a *Arena) Find(k Kind) (Handle, bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.live && s.ent.Kind == k {
			return Handle{idx: uint32(i), gen: s.gen}, true
		}
	}
	return NilHandle, false
}

// FindPaddle returns the paddle defending the given side.
func (a *Arena) FindPaddle(side Side) (Handle, bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.live && s.ent.Kind == KindPaddle && s.ent.Side == side {
			return Handle{idx: uint32(i), gen: s.gen}, true
		}
	}
	return NilHandle, false
}

func (a *Arena) resolve(h Handle) *slot {
	if int(h.idx) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.idx]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return s
}
