package mir

import "strconv"

// DerivativeVarTable memoizes the (variable, unknown) → derivative-variable
// mapping (invariant I4: a bijection between pairs and distinct,
// real-typed MIR variables). Repeated references to the same variable
// under the same unknown must resolve to the same synthesized variable, or
// downstream assignment tracking breaks.
type DerivativeVarTable struct {
	table  map[derivKey]VarId
	keyBuf []byte
}

type derivKey string

// get returns the existing derivative variable for (v, u) if one was
// already synthesized, or allocates and interns a fresh real-typed one
// otherwise.
func (t *DerivativeVarTable) get(m *Mir, v VarId, u Unknown) VarId {
	if t.table == nil {
		t.table = make(map[derivKey]VarId, 16)
	}
	key := t.normalize(v, u)
	if id, ok := t.table[key]; ok {
		return id
	}

	base := Variable{Name: "<var>"}
	if int(v) < len(m.Variables) {
		base = m.Variables[v]
	}
	id := m.AddVariable(Variable{
		Name: "_d_" + base.Name + "_d" + unknownSuffix(u),
		Type: VarTypeReal,
	})
	t.table[key] = id
	return id
}

// normalize builds a unique key for (v, u) in a reusable byte buffer, so the
// buffer itself is not reallocated on each call; the returned key is a string
// copy of the buffer. The table is consulted once per variable reference in
// a large expression, so this is on the hot path of differentiating a big
// contribution expression.
func (t *DerivativeVarTable) normalize(v VarId, u Unknown) derivKey {
	b := t.keyBuf[:0]
	b = strconv.AppendUint(b, uint64(v), 10)
	b = append(b, ':')
	b = append(b, byte(u.kind))
	switch u.kind {
	case unknownParameter:
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(u.param), 10)
	case unknownNodePotential:
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(u.net), 10)
	case unknownFlow:
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(u.branch), 10)
	}
	t.keyBuf = b
	return derivKey(b)
}

func unknownSuffix(u Unknown) string {
	switch u.kind {
	case unknownParameter:
		return "p" + strconv.FormatUint(uint64(u.param), 10)
	case unknownNodePotential:
		return "v" + strconv.FormatUint(uint64(u.net), 10)
	case unknownFlow:
		return "i" + strconv.FormatUint(uint64(u.branch), 10)
	case unknownTemperature:
		return "temp"
	case unknownTime:
		return "t"
	default:
		return "unknown"
	}
}
