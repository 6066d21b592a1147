package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame(t *testing.T, w, h int, seed int64) *Game {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.BoardW = w
	cfg.BoardH = h
	cfg.Seed = seed

	g, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func frameOf(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func assertFoodOffSnake(t *testing.T, g *Game) {
	t.Helper()
	pos, ok := g.food.Position()
	if !ok {
		return
	}
	if g.snake.Occupies(pos) {
		t.Fatalf("food at %v lies on the snake %v", pos, g.snake.Body())
	}
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, 32, 24, 42)

	st := g.State()
	if st.Phase != core.PhaseRunning || st.Tick != 0 || st.Length != 1 {
		t.Errorf("State() = %+v, expected running, tick 0, length 1", st)
	}
	if !g.food.Placed() {
		t.Error("food should be placed at start")
	}
	assertFoodOffSnake(t, g)
}

func TestNewGameInvalidBoard(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.BoardW = 0

	if _, err := New(cfg, nil); !errors.Is(err, ErrInvalidBoard) {
		t.Errorf("New() error = %v, expected ErrInvalidBoard", err)
	}
}

func TestEatAfterFourTicks(t *testing.T) {
	g := newTestGame(t, 32, 24, 7)
	g.food.place(core.Pt(20, 12))

	var res core.StepResult
	for i := 1; i <= 4; i++ {
		res = g.Step(core.NewInputFrame())
		if i < 4 && res.Ate {
			t.Fatalf("ate early on tick %d", i)
		}
	}

	if !res.Ate {
		t.Fatal("expected the snake to eat on tick 4")
	}
	if g.snake.Head() != core.Pt(20, 12) {
		t.Errorf("Head() = %v, expected (20, 12)", g.snake.Head())
	}
	if g.snake.TargetLength() != 2 {
		t.Errorf("TargetLength() = %d, expected 2", g.snake.TargetLength())
	}
	pos, ok := g.food.Position()
	if !ok || pos == core.Pt(20, 12) {
		t.Errorf("food should be relocated away from (20, 12), got %v placed=%v", pos, ok)
	}
	assertFoodOffSnake(t, g)

	// The growth shows on the next move
	g.Step(core.NewInputFrame())
	body := g.snake.Body()
	if len(body) != 2 || body[0] != core.Pt(21, 12) || body[1] != core.Pt(20, 12) {
		t.Errorf("Body() = %v, expected [(21,12) (20,12)]", body)
	}
}

func TestReverseIntoNeckIsRejected(t *testing.T) {
	g := newTestGame(t, 32, 24, 3)
	g.snake.body = []core.Point{core.Pt(10, 5), core.Pt(9, 5), core.Pt(8, 5), core.Pt(7, 5), core.Pt(6, 5)}
	g.snake.targetLength = 5
	g.food.place(core.Pt(0, 20))

	res := g.Step(frameOf(core.ActionLeft))

	if res.Reset || g.resets != 0 {
		t.Fatal("reverse request must not cause a self-collision")
	}
	if g.snake.Head() != core.Pt(11, 5) {
		t.Errorf("Head() = %v, expected (11, 5)", g.snake.Head())
	}
	if g.snake.Len() != 5 || g.snake.Direction() != DirRight {
		t.Errorf("Len() = %d, Direction() = %s; expected 5, right", g.snake.Len(), g.snake.Direction())
	}
}

func TestSelfCollisionResetsGame(t *testing.T) {
	g := newTestGame(t, 32, 24, 11)
	g.snake.body = []core.Point{core.Pt(5, 5), core.Pt(5, 6), core.Pt(4, 6), core.Pt(4, 5), core.Pt(4, 4)}
	g.snake.targetLength = 5
	g.snake.direction = DirUp
	g.food.place(core.Pt(20, 20))

	res := g.Step(frameOf(core.ActionLeft))

	if !res.Reset {
		t.Fatal("expected a reset")
	}
	if res.State.Phase != core.PhaseRunning {
		t.Errorf("Phase = %s, expected running after reset", res.State.Phase)
	}
	if res.State.Resets != 1 || res.State.Length != 1 {
		t.Errorf("State = %+v, expected 1 reset and length 1", res.State)
	}
	if g.snake.Head() != core.Pt(16, 12) || g.snake.Direction() != DirRight || g.snake.TargetLength() != 1 {
		t.Errorf("snake not at defaults: %s", g.DebugState())
	}
	if !g.food.Placed() {
		t.Error("food should be placed after reset")
	}
	assertFoodOffSnake(t, g)
}

func TestConsumptionCheckedBeforeCollision(t *testing.T) {
	g := newTestGame(t, 32, 24, 5)
	g.snake.body = []core.Point{core.Pt(5, 5), core.Pt(5, 6), core.Pt(4, 6), core.Pt(4, 5), core.Pt(4, 4)}
	g.snake.targetLength = 5
	g.snake.direction = DirUp
	// Food on a body cell only happens if placement is bypassed
	g.food.place(core.Pt(4, 5))

	res := g.Step(frameOf(core.ActionLeft))

	if !res.Ate || !res.Reset {
		t.Fatalf("expected both events, got Ate=%v Reset=%v", res.Ate, res.Reset)
	}
	if g.snake.TargetLength() != 1 {
		t.Errorf("reset after growth should restore target length 1, got %d", g.snake.TargetLength())
	}
	assertFoodOffSnake(t, g)
}

func TestTurnsAppliedInArrivalOrder(t *testing.T) {
	t.Run("later reverse does not cancel earlier turn", func(t *testing.T) {
		g := newTestGame(t, 32, 24, 1)
		g.Step(frameOf(core.ActionUp, core.ActionLeft))

		if g.snake.Head() != core.Pt(16, 11) {
			t.Errorf("Head() = %v, expected (16, 11)", g.snake.Head())
		}
	})

	t.Run("last accepted turn wins", func(t *testing.T) {
		g := newTestGame(t, 32, 24, 1)
		g.Step(frameOf(core.ActionDown, core.ActionUp))

		if g.snake.Head() != core.Pt(16, 11) || g.snake.Direction() != DirUp {
			t.Errorf("Head() = %v, Direction() = %s; expected (16, 11) up", g.snake.Head(), g.snake.Direction())
		}
	})
}

func TestQuitTerminates(t *testing.T) {
	g := newTestGame(t, 32, 24, 9)
	start := g.snake.Head()

	res := g.Step(frameOf(core.ActionDown, core.ActionQuit))

	if !res.State.Terminated() {
		t.Fatalf("Phase = %s, expected terminated", res.State.Phase)
	}
	if g.snake.Head() != start {
		t.Error("the snake must not move on the quit tick")
	}

	tick := res.State.Tick
	res = g.Step(core.NewInputFrame())
	if res.State.Tick != tick || !res.State.Terminated() {
		t.Error("Step after termination should be a no-op")
	}
	if g.snake.Head() != start {
		t.Error("the snake must not move after termination")
	}
}

func TestDeterminism(t *testing.T) {
	script, err := ParseScript("3:down,9:left,15:up,22:right,30:down,41:left,55:up")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}

	g1 := newTestGame(t, 20, 15, 12345)
	g2 := newTestGame(t, 20, 15, 12345)

	for tick := uint64(1); tick <= 300; tick++ {
		g1.Step(script.Frame(tick))
		g2.Step(script.Frame(tick))

		if g1.Snapshot() != g2.Snapshot() {
			t.Fatalf("snapshots diverged at tick %d:\n%+v\n%+v", tick, g1.Snapshot(), g2.Snapshot())
		}
	}
}

func TestFoodInvariantHoldsDuringPlay(t *testing.T) {
	g := newTestGame(t, 10, 8, 99)
	turns := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}

	ate := 0
	for tick := 0; tick < 2000; tick++ {
		frame := core.NewInputFrame()
		if tick%3 == 0 {
			frame.Set(turns[(tick/3)%len(turns)])
		}
		res := g.Step(frame)
		if res.Ate {
			ate++
		}
		assertFoodOffSnake(t, g)
		if g.snake.Len() < 1 {
			t.Fatal("snake body must never be empty")
		}
	}

	if ate == 0 {
		t.Log("no food eaten in 2000 ticks; invariant still checked every tick")
	}
}

func TestSingleCellBoardHidesFood(t *testing.T) {
	g := newTestGame(t, 1, 1, 4)

	if g.food.Placed() {
		t.Fatal("a 1x1 board has no room for food")
	}
	if len(g.Frame().Cells) != 1 {
		t.Errorf("frame should only contain the snake, got %d cells", len(g.Frame().Cells))
	}

	res := g.Step(core.NewInputFrame())
	if res.Reset || g.snake.Head() != core.Pt(0, 0) {
		t.Errorf("single segment wrapping onto its own cell must not collide: %s", g.DebugState())
	}
}

func TestFoodReappearsWhenCellFrees(t *testing.T) {
	g := newTestGame(t, 2, 1, 8)

	// Snake spawns at (1,0); the only free cell is (0,0)
	if pos, ok := g.food.Position(); !ok || pos != core.Pt(0, 0) {
		t.Fatalf("food = %v placed=%v, expected (0, 0)", pos, ok)
	}

	res := g.Step(core.NewInputFrame())
	if !res.Ate {
		t.Fatal("tick 1 should eat")
	}
	if pos, _ := g.food.Position(); pos != core.Pt(1, 0) {
		t.Fatalf("food = %v, expected (1, 0)", pos)
	}

	res = g.Step(core.NewInputFrame())
	if !res.Ate || g.food.Placed() {
		t.Fatalf("tick 2 should eat and leave no free cell: %s", g.DebugState())
	}

	res = g.Step(core.NewInputFrame())
	if !res.Reset {
		t.Fatalf("tick 3 should collide: %s", g.DebugState())
	}
	if pos, ok := g.food.Position(); !ok || pos != core.Pt(0, 0) {
		t.Errorf("food = %v placed=%v, expected (0, 0) after reset", pos, ok)
	}
}

func TestFrame(t *testing.T) {
	g := newTestGame(t, 32, 24, 21)
	g.snake.body = []core.Point{core.Pt(3, 3), core.Pt(2, 3)}
	g.food.place(core.Pt(9, 9))

	f := g.Frame()
	palette := core.DefaultPalette()

	if f.Width != 32 || f.Height != 24 || f.CellSize != 20 || f.Background != palette.Background {
		t.Errorf("frame header = %+v", f)
	}
	if len(f.Cells) != 3 {
		t.Fatalf("len(Cells) = %d, expected 3", len(f.Cells))
	}
	if f.Cells[0].Pos != core.Pt(3, 3) || f.Cells[0].Glyph != 'O' || f.Cells[0].Color != palette.Snake {
		t.Errorf("head cell = %+v", f.Cells[0])
	}
	if f.Cells[2].Pos != core.Pt(9, 9) || f.Cells[2].Color != palette.Food {
		t.Errorf("food cell = %+v", f.Cells[2])
	}
}
