package adextopa

import "github.com/zostay/adextopa/token"

// ScopeValue is a value a Scope frame can bind a name to: a captured Token
// (Store of a matcher), a literal string (Store of a string, or a grammar
// attribute), or a registered Matcher (Register, imported patterns).
type ScopeValue interface {
	isScopeValue()
}

// TokenScopeValue binds a name to a captured token.
type TokenScopeValue struct{ Token *token.Token }

func (TokenScopeValue) isScopeValue() {}

// StringScopeValue binds a name to a literal string.
type StringScopeValue struct{ Value string }

func (StringScopeValue) isScopeValue() {}

// MatcherScopeValue binds a name to a registered matcher.
type MatcherScopeValue struct{ Matcher Matcher }

func (MatcherScopeValue) isScopeValue() {}

// scopeFrame is one layer of a ScopeContext's stack.
type scopeFrame map[string]ScopeValue

// ScopeContext is a stack of name-to-value frames. Get searches top-down;
// Set writes to the top frame, creating one first if the stack is empty.
// SetScope does not push a frame: it runs its subtree against a separate
// ScopeContext. Push and Pop are not called by any matcher.
type ScopeContext struct {
	frames []scopeFrame
}

// NewScopeContext creates a ScopeContext with a single empty frame.
func NewScopeContext() *ScopeContext {
	return &ScopeContext{frames: []scopeFrame{make(scopeFrame)}}
}

// Push adds a fresh, empty frame to the top of the stack.
func (s *ScopeContext) Push() {
	s.frames = append(s.frames, make(scopeFrame))
}

// Pop removes the top frame. It is a no-op if the stack is already empty,
// mirroring Set's own empty-stack tolerance.
func (s *ScopeContext) Pop() {
	if len(s.frames) == 0 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Get searches the stack top-down for name, returning its value and
// whether it was found.
func (s *ScopeContext) Get(name string) (ScopeValue, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set writes name into the top frame, auto-creating one if the stack is
// empty.
func (s *ScopeContext) Set(name string, value ScopeValue) {
	if len(s.frames) == 0 {
		s.Push()
	}
	s.frames[len(s.frames)-1][name] = value
}

// GetToken is a convenience accessor for a variable expected to hold a
// Token.
func (s *ScopeContext) GetToken(name string) (*token.Token, bool) {
	v, ok := s.Get(name)
	if !ok {
		return nil, false
	}
	tv, ok := v.(TokenScopeValue)
	if !ok {
		return nil, false
	}
	return tv.Token, true
}

// GetString is a convenience accessor for a variable expected to hold a
// String.
func (s *ScopeContext) GetString(name string) (string, bool) {
	v, ok := s.Get(name)
	if !ok {
		return "", false
	}
	sv, ok := v.(StringScopeValue)
	if !ok {
		return "", false
	}
	return sv.Value, true
}

// GetMatcher is a convenience accessor for a variable expected to hold a
// Matcher.
func (s *ScopeContext) GetMatcher(name string) (Matcher, bool) {
	v, ok := s.Get(name)
	if !ok {
		return nil, false
	}
	mv, ok := v.(MatcherScopeValue)
	if !ok {
		return nil, false
	}
	return mv.Matcher, true
}
