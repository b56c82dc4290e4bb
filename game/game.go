package game

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-board/model"
	"github.com/sheikhrachel/go-gol-board/utils"
)

// historySize is how many recent board hashes are kept for cycle detection
const historySize = 5

// Seeder picks the cell generator for a board of the given size. It is
// consulted on every (re)generation so resizing can re-center patterns.
type Seeder func(width, height int) model.CellStateGenerator

// Fixed is a Seeder that always uses gen
func Fixed(gen model.CellStateGenerator) Seeder {
	return func(_, _ int) model.CellStateGenerator {
		return gen
	}
}

// Renderer draws a board; model.TerminalRenderer satisfies it
type Renderer interface {
	Clear() error
	Display(b *model.Board) error
}

// Game holds the current board and a run/paused flag, and owns the loop
// that advances it. All board changes go through one mutex so Advance is
// never called concurrently on the same lineage.
type Game struct {
	mu sync.Mutex

	cfg      utils.Config
	seeder   Seeder
	renderer Renderer
	out      io.Writer

	width, height int
	board         *model.Board
	status        Status
	generation    int
	lastTally     model.Tally

	history       []string
	stagnant      bool
	stagnantCount int

	rng       *rand.Rand
	stats     *utils.Stats
	lastFrame time.Time
}

// New generates the initial board. A nil seeder uses the default random generator.
func New(cfg utils.Config, seeder Seeder, renderer Renderer, out io.Writer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[game.New]")
	}
	status, err := ParseStatus(cfg.InitialStatus)
	if err != nil {
		return nil, errors.Wrap(err, "[game.New]")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:      cfg,
		seeder:   seeder,
		renderer: renderer,
		out:      out,
		width:    cfg.Width,
		height:   cfg.Height,
		status:   status,
		rng:      rand.New(rand.NewSource(seed)),
		stats:    utils.NewStats(),
	}
	if err = g.regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Board returns the current board
func (g *Game) Board() *model.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

// Status returns whether the game is running or paused
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Generation returns the number of generations since the last restart
func (g *Game) Generation() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generation
}

// Stagnant reports whether the last step repeated a recent board
func (g *Game) Stagnant() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stagnant
}

func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = Running
}

func (g *Game) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = Paused
}

// TogglePause flips between running and paused and returns the new status
func (g *Game) TogglePause() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status == Running {
		g.status = Paused
	} else {
		g.status = Running
	}
	return g.status
}

// Step advances one generation regardless of status
func (g *Game) Step() *model.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.step()
	return g.board
}

// Restart replaces the board with a freshly generated one
func (g *Game) Restart() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.regenerate()
}

// Resize regenerates the board as a size x size square
func (g *Game) Resize(size int) error {
	if size <= 0 || size > utils.MaxDimension {
		return errors.Wrapf(model.ErrInvalidDimensions,
			"[Resize] size=%d, want 1..%d", size, utils.MaxDimension)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.width, g.height = size, size
	return g.regenerate()
}

// ToggleCell replaces the board with a copy in which (x, y) is flipped
func (g *Game) ToggleCell(x, y int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	next, err := toggled(g.board, x, y)
	if err != nil {
		return errors.Wrap(err, "[ToggleCell]")
	}
	g.board = next
	return nil
}

// Apply executes a parsed command. CmdQuit is handled by Run.
func (g *Game) Apply(cmd Command) error {
	switch cmd.Kind {
	case CmdTogglePause:
		g.TogglePause()
	case CmdStart:
		g.Start()
	case CmdPause:
		g.Pause()
	case CmdStep:
		g.Step()
	case CmdRestart:
		return g.Restart()
	case CmdToggleCell:
		return g.ToggleCell(cmd.X, cmd.Y)
	case CmdResize:
		return g.Resize(cmd.Size)
	}
	return nil
}

// Run draws the board, then advances it on every tick while running and
// applies commands as they arrive. It returns nil when ctx is done, on
// CmdQuit, or once MaxGenerations is reached.
func (g *Game) Run(ctx context.Context, commands <-chan Command) error {
	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	if err := g.render(""); err != nil {
		return err
	}

	for {
		var message string

		select {
		case <-ctx.Done():
			fmt.Fprintln(g.out, "\n🛑 Shutting down gracefully...")
			return nil

		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			if cmd.Kind == CmdQuit {
				return nil
			}
			if err := g.Apply(cmd); err != nil {
				message = fmt.Sprintf("Error: %v", err)
			}

		case <-ticker.C:
			g.mu.Lock()
			if g.status == Running {
				message = g.step()
			}
			g.mu.Unlock()
		}

		if err := g.render(message); err != nil {
			return err
		}

		if g.reachedLimit() {
			fmt.Fprintf(g.out, "\n🏁 Reached maximum generations limit (%d)\n", g.cfg.MaxGenerations)
			return nil
		}
	}
}

func (g *Game) reachedLimit() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cfg.MaxGenerations > 0 && g.generation >= g.cfg.MaxGenerations
}

// regenerate must be called with mu held
func (g *Game) regenerate() error {
	var gen model.CellStateGenerator
	if g.seeder != nil {
		gen = g.seeder(g.width, g.height)
	}
	board, err := model.Generate(g.width, g.height, gen)
	if err != nil {
		return errors.Wrap(err, "[regenerate]")
	}
	g.board = board
	g.generation = 0
	g.lastTally = model.Tally{}
	g.history = nil
	g.stagnant = false
	g.stagnantCount = 0
	g.stats.Reset()
	g.lastFrame = time.Now()
	return nil
}

// step must be called with mu held. It returns a message when the board
// was restarted automatically.
func (g *Game) step() string {
	next, tally := model.AdvanceTally(g.board)

	g.history = append(g.history, g.board.Hash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
	g.board = next
	g.generation++
	g.lastTally = tally
	g.updateStagnation()

	now := time.Now()
	g.stats.Update(next.Population(), tally.Births(), tally.Deaths(), now.Sub(g.lastFrame))
	g.lastFrame = now

	if !g.cfg.AutoRestart {
		return ""
	}
	reason := ""
	switch {
	case next.Population() == 0:
		reason = "extinction"
	case g.stagnantCount >= g.cfg.StagnationThreshold:
		reason = "stagnation detected"
	case g.cfg.RefreshInterval > 0 && g.generation%g.cfg.RefreshInterval == 0:
		reason = "periodic refresh"
	case g.stagnantCount >= 2 && g.cfg.InjectionCount > 0:
		// Try to break the stagnation before giving up on the board
		injected, err := injectLife(g.board, g.rng, g.cfg.InjectionCount)
		if err != nil {
			return fmt.Sprintf("Error: %v", err)
		}
		g.board = injected
		return fmt.Sprintf("💉 Injected %d cells", g.cfg.InjectionCount)
	default:
		return ""
	}
	if err := g.regenerate(); err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return fmt.Sprintf("🔄 Restarted due to %s", reason)
}

// updateStagnation marks the board stagnant when it repeats one of the last
// three boards: a still life or an oscillator of period two or three.
func (g *Game) updateStagnation() {
	current := g.board.Hash()
	g.stagnant = false
	for i := len(g.history) - 1; i >= 0 && i >= len(g.history)-3; i-- {
		if g.history[i] == current {
			g.stagnant = true
			break
		}
	}
	if g.stagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
}

func (g *Game) render(message string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.renderer.Clear(); err != nil {
		return errors.Wrap(err, "[render]")
	}

	var (
		living  = g.board.Population()
		density = float64(living) / float64(g.board.Width()*g.board.Height()) * 100
		state   = g.status.String()
	)
	switch {
	case living == 0:
		state += ", extinct"
	case g.stagnant:
		state += ", stagnant"
	}

	fmt.Fprintf(g.out, "Grid: %dx%d | Tick: %v | Press Ctrl+C or q to exit\n",
		g.board.Width(), g.board.Height(), g.cfg.TickInterval)
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.generation, living, density, state)
	fmt.Fprintf(g.out, "Last step: +%d -%d | Since restart: %d births, %d deaths\n",
		g.lastTally.Births(), g.lastTally.Deaths(), g.stats.Births, g.stats.Deaths)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation,
		time.Since(g.stats.StartTime).Seconds())

	if err := g.renderer.Display(g.board); err != nil {
		return errors.Wrap(err, "[render]")
	}

	fmt.Fprintln(g.out, Usage)
	if message != "" {
		fmt.Fprintln(g.out, message)
	}
	return nil
}

// toggled copies b with the cell at (x, y) flipped
func toggled(b *model.Board, x, y int) (*model.Board, error) {
	state, err := b.Cell(x, y)
	if err != nil {
		return nil, err
	}
	rows := b.Rows()
	rows[y][x] = state.Toggle()
	return model.FromRows(rows)
}

// injectLife copies b with up to n randomly chosen dead cells brought to life
func injectLife(b *model.Board, rng *rand.Rand, n int) (*model.Board, error) {
	rows := b.Rows()

	var dead [][2]int
	for y, row := range rows {
		for x, cell := range row {
			if !cell.IsAlive() {
				dead = append(dead, [2]int{x, y})
			}
		}
	}
	rng.Shuffle(len(dead), func(i, j int) {
		dead[i], dead[j] = dead[j], dead[i]
	})

	for _, c := range dead[:min(n, len(dead))] {
		rows[c[1]][c[0]] = model.Alive
	}
	return model.FromRows(rows)
}
