package minnow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewNFA_noStartState(t *testing.T) {
	assert := assert.New(t)

	q, err := NewStateSet(2)
	if !assert.NoError(err) {
		return
	}
	sigma := mustAlphabet(t, "ab")
	delta := NewMultiValuedTransitionFunction(sigma)

	_, err = NewNFA(q, sigma, delta)
	assert.ErrorIs(err, ErrNoStartState)
}

func Test_NFA_initialConfiguration(t *testing.T) {
	assert := assert.New(t)

	m := containsABNFA(t)

	assert.Equal([]int{0}, m.CurrentStates())
	assert.False(m.Accepting())
	assert.Empty(m.Trace())
}

func Test_NFA_Accepts(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect bool
	}{
		{
			name:   "abb",
			input:  "abb",
			expect: true,
		},
		{
			name:   "aabb",
			input:  "aabb",
			expect: true,
		},
		{
			name:   "baabb",
			input:  "baabb",
			expect: true,
		},
		{
			name:   "empty string",
			input:  "",
			expect: false,
		},
		{
			name:   "single a",
			input:  "a",
			expect: false,
		},
		{
			name:   "ba",
			input:  "ba",
			expect: false,
		},
		{
			name:   "aaa",
			input:  "aaa",
			expect: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			m := containsABNFA(t)

			actual, err := m.Accepts(tc.input)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_NFA_Accepts_multiplePaths(t *testing.T) {
	assert := assert.New(t)

	q := mustStates(t, 3, 0, 2)
	sigma := mustAlphabet(t, "ab")

	delta := NewMultiValuedTransitionFunction(sigma)
	assert.NoError(delta.AddTransition(0, sym(t, sigma, 'a'), 0))
	assert.NoError(delta.AddTransition(0, sym(t, sigma, 'a'), 1))
	assert.NoError(delta.AddTransition(1, sym(t, sigma, 'b'), 2))

	m, err := NewNFA(q, sigma, delta)
	if !assert.NoError(err) {
		return
	}

	// only the branch that stays in q0 on the first 'a' can finish in q2
	actual, err := m.Accepts("aab")
	assert.NoError(err)
	assert.True(actual)
}

func Test_NFA_Feed_configuration(t *testing.T) {
	assert := assert.New(t)

	m := containsABNFA(t)

	assert.NoError(m.FeedString("a"))
	assert.Equal([]int{0, 1}, m.CurrentStates())

	assert.NoError(m.FeedString("b"))
	assert.Equal([]int{0, 2}, m.CurrentStates())
	assert.True(m.Accepting())
}

func Test_NFA_Feed_deadBranches(t *testing.T) {
	assert := assert.New(t)

	q := mustStates(t, 3, 0, 2)
	sigma := mustAlphabet(t, "ab")

	delta := NewMultiValuedTransitionFunction(sigma)
	assert.NoError(delta.AddTransition(0, sym(t, sigma, 'a'), 1))
	assert.NoError(delta.AddTransition(1, sym(t, sigma, 'b'), 2))

	m, err := NewNFA(q, sigma, delta)
	if !assert.NoError(err) {
		return
	}

	// q1 has no edge on 'a'; the lone branch dies and the configuration
	// empties without error
	assert.NoError(m.FeedString("aa"))
	assert.Empty(m.CurrentStates())
	assert.False(m.Accepting())

	// and it stays empty for the remainder of the run
	assert.NoError(m.FeedString("ab"))
	assert.Empty(m.CurrentStates())
	assert.False(m.Accepting())
}

func Test_NFA_Feed_traceRecordsAllBranches(t *testing.T) {
	assert := assert.New(t)

	m := containsABNFA(t)

	assert.NoError(m.FeedString("a"))

	// both edges out of q0 on 'a' were taken, and both are in the trace
	trace := m.Trace()
	if !assert.Len(trace, 2) {
		return
	}
	assert.Equal(Step{From: 0, Input: trace[0].Input, To: 0}, trace[0])
	assert.Equal(Step{From: 0, Input: trace[1].Input, To: 1}, trace[1])
	assert.Equal("a", trace[0].Input.String())
}

func Test_NFA_Accepts_symbolNotInAlphabet(t *testing.T) {
	assert := assert.New(t)

	m := containsABNFA(t)

	_, err := m.Accepts("abz")
	assert.ErrorIs(err, ErrNotInAlphabet)

	// rejected before any configuration mutation
	assert.Equal([]int{0}, m.CurrentStates())
	assert.Empty(m.Trace())
}

func Test_NFA_Reset(t *testing.T) {
	assert := assert.New(t)

	m := containsABNFA(t)

	assert.NoError(m.FeedString("abb"))
	assert.NotEmpty(m.Trace())

	m.Reset()

	assert.Empty(m.Trace())
	assert.Equal([]int{0}, m.CurrentStates())
}

func Test_NFA_Accepts_idempotent(t *testing.T) {
	assert := assert.New(t)

	m := containsABNFA(t)

	first, err := m.Accepts("abb")
	assert.NoError(err)
	second, err := m.Accepts("abb")
	assert.NoError(err)

	assert.Equal(first, second)
	assert.Equal([]int{0}, m.CurrentStates())
}

func Test_NFA_String(t *testing.T) {
	assert := assert.New(t)

	m := containsABNFA(t)

	actual := m.String()
	assert.Contains(actual, "NFA")
	assert.Contains(actual, "start=q0")
	assert.Contains(actual, "current={0}")
}
