package selection_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/meshroute/builder"
	"github.com/katalvlaran/meshroute/core"
	"github.com/katalvlaran/meshroute/dijkstra"
	"github.com/katalvlaran/meshroute/mesh/meshtest"
	"github.com/katalvlaran/meshroute/selection"
	"github.com/katalvlaran/meshroute/spatial"
)

// SessionSuite runs picks against a 4×4-cell grid plus one isolated vertex.
type SessionSuite struct {
	suite.Suite
	g    *core.Graph
	lone int
	s    *selection.Session
}

func (s *SessionSuite) SetupTest() {
	m := meshtest.Grid(4, 4, 4, nil)
	s.lone = meshtest.Scatter(m, vec3.T{100, 0, 100})[0]
	g, err := builder.FromMesh(m)
	s.Require().NoError(err)
	s.g = g

	sess, err := selection.NewSession(g)
	s.Require().NoError(err)
	s.s = sess
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func indices(nodes []core.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Index
	}
	return out
}

func (s *SessionSuite) TestFirstPickDoesNotRoute() {
	res, err := s.s.Pick(20)
	s.Require().NoError(err)
	s.Equal([]int{20}, indices(res.Points))
	s.False(res.Routed)
	s.Zero(res.Path.Len())
}

func (s *SessionSuite) TestSecondPickRoutes() {
	_, err := s.s.Pick(20)
	s.Require().NoError(err)
	res, err := s.s.Pick(4)
	s.Require().NoError(err)

	s.True(res.Routed)
	s.Equal([]int{20, 16, 12, 8, 4}, res.Path.Indices())
	s.Equal([]int{20, 4}, indices(res.Points))

	p, ok := s.s.Path()
	s.True(ok)
	s.Equal(res.Path.Indices(), p.Indices())
}

// TestResultsDoNotAliasSession edits returned values and checks the session
// still reports its own route and markers.
func (s *SessionSuite) TestResultsDoNotAliasSession() {
	_, err := s.s.Pick(20)
	s.Require().NoError(err)
	res, err := s.s.Pick(4)
	s.Require().NoError(err)
	s.Require().True(res.Routed)

	res.Path.Nodes[0].Index = 999
	res.Path.Nodes[1].Edges[0] = -1
	res.Points[0].Index = 999

	p, ok := s.s.Path()
	s.Require().True(ok)
	s.Equal([]int{20, 16, 12, 8, 4}, p.Indices())
	s.NotContains(p.Nodes[1].Edges, -1)

	p.Nodes[0].Index = 777
	s.Equal([]int{20, 4}, indices(s.s.Points()))
	s.Equal([]int{20, 16, 12, 8, 4}, s.s.Snapshot().Path.Indices())
}

func (s *SessionSuite) TestThirdPickStartsOver() {
	_, _ = s.s.Pick(0)
	_, _ = s.s.Pick(24)
	res, err := s.s.Pick(12)
	s.Require().NoError(err)

	s.Equal([]int{12}, indices(res.Points))
	s.False(res.Routed)
	_, ok := s.s.Path()
	s.False(ok)

	res, err = s.s.Pick(13)
	s.Require().NoError(err)
	s.True(res.Routed)
	s.Equal([]int{12, 13}, res.Path.Indices())
}

func (s *SessionSuite) TestSamePickTwice() {
	_, _ = s.s.Pick(7)
	res, err := s.s.Pick(7)
	s.Require().NoError(err)
	s.True(res.Routed)
	s.Equal([]int{7}, res.Path.Indices())
	s.Zero(res.Path.Cost)
}

func (s *SessionSuite) TestUnreachableKeepsPointsClearsPath() {
	_, _ = s.s.Pick(0)
	res, err := s.s.Pick(s.lone)
	s.ErrorIs(err, dijkstra.ErrPathNotFound)
	s.Equal([]int{0, s.lone}, indices(res.Points))
	s.False(res.Routed)

	// The next pick still restarts the cycle.
	res, err = s.s.Pick(3)
	s.Require().NoError(err)
	s.Equal([]int{3}, indices(res.Points))
}

func (s *SessionSuite) TestUnknownIndexLeavesSessionUntouched() {
	_, _ = s.s.Pick(5)
	res, err := s.s.Pick(999)
	s.ErrorIs(err, core.ErrNodeNotFound)
	s.Equal([]int{5}, indices(res.Points))
	s.Equal([]int{5}, indices(s.s.Points()))
}

func (s *SessionSuite) TestReset() {
	_, _ = s.s.Pick(0)
	_, _ = s.s.Pick(1)
	s.s.Reset()
	s.Empty(s.s.Points())
	_, ok := s.s.Path()
	s.False(ok)
}

func (s *SessionSuite) TestPickNear() {
	ix, err := spatial.NewIndex(s.g)
	s.Require().NoError(err)

	_, err = s.s.PickNear(nil, vec3.T{})
	s.ErrorIs(err, selection.ErrNilIndex)

	_, err = s.s.PickNear(ix, vec3.T{1.9, 0, -1.9})
	s.Require().NoError(err)
	res, err := s.s.PickNear(ix, vec3.T{-1.9, 0, 1.9})
	s.Require().NoError(err)
	s.Equal([]int{20, 16, 12, 8, 4}, res.Path.Indices())
}

func (s *SessionSuite) TestQueryOptionsForwarded() {
	sess, err := selection.NewSession(s.g, selection.WithQueryOptions(dijkstra.WithMaxDistance(1)))
	s.Require().NoError(err)

	_, _ = sess.Pick(0)
	_, err = sess.Pick(24)
	s.ErrorIs(err, dijkstra.ErrPathNotFound)
}

func TestNewSession_NilGraph(t *testing.T) {
	_, err := selection.NewSession(nil)
	require.ErrorIs(t, err, selection.ErrNilGraph)
}

func TestSession_ConcurrentPicks(t *testing.T) {
	g, err := builder.FromMesh(meshtest.Grid(8, 8, 8, nil))
	require.NoError(t, err)
	sess, err := selection.NewSession(g)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, _ = sess.Pick((w*7 + i) % g.NodeCount())
			}
		}(w)
	}
	wg.Wait()

	require.LessOrEqual(t, len(sess.Points()), 2)
}
