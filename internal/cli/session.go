package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/hedge"
	"github.com/aretw0/hedge/internal/presentation/tui"
	"github.com/aretw0/hedge/pkg/domain"
)

// session holds the state of one interactive run: the current maze and the
// last solution drawn over it.
type session struct {
	opts     RunOptions
	svc      hedge.Service
	maze     *domain.Maze
	path     domain.Path
	lastAlgo string
	out      io.Writer
}

// RunInteractive drives the interactive workshop: a small command loop over
// stdin for generating, solving and comparing mazes.
func RunInteractive(opts RunOptions, in io.Reader, out io.Writer) error {
	s := &session{
		opts: opts,
		svc:  hedge.Service{Logger: createLogger(opts.Debug)},
		out:  out,
	}

	if err := s.generate(opts.Width, opts.Height); err != nil {
		return err
	}
	s.show()
	s.help()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "hedge> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		var err error
		switch cmd {
		case "generate", "g":
			err = s.handleGenerate(args)
		case "solve", "s":
			err = s.handleSolve(args)
		case "compare", "c":
			err = s.compare()
		case "show":
			s.show()
		case "theme":
			err = s.handleTheme(args)
		case "unicode":
			s.opts.Unicode = !s.opts.Unicode
			s.show()
		case "export", "e":
			err = s.handleExport(args)
		case "guide":
			err = s.guide()
		case "help", "h", "?":
			s.help()
		case "quit", "q", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q, try 'help'\n", cmd)
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func (s *session) help() {
	fmt.Fprint(s.out, `commands:
  generate [w h]   carve a new maze (current size by default)
  solve [algo]     solve with bfs, astar, dijkstra or deadend
  compare          run every algorithm and report path lengths
  show             redraw the current maze
  theme <name>     switch the color theme
  unicode          toggle unicode glyphs
  export <name>    write text and JSON files
  guide            explain the algorithms
  quit             leave
`)
}

func (s *session) generate(width, height int) error {
	m, err := s.svc.Generate(width, height, s.opts.Generator, s.opts.Seed)
	if err != nil {
		return err
	}
	s.maze = m
	s.path = nil
	s.lastAlgo = ""
	// One maze per seed; follow-up generates should differ.
	s.opts.Seed = 0
	s.opts.Width, s.opts.Height = width, height
	return nil
}

func (s *session) handleGenerate(args []string) error {
	width, height := s.opts.Width, s.opts.Height
	if len(args) >= 2 {
		var err error
		if width, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("bad width %q", args[0])
		}
		if height, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("bad height %q", args[1])
		}
	}
	if err := s.generate(width, height); err != nil {
		return err
	}
	s.show()
	return nil
}

func (s *session) handleSolve(args []string) error {
	algorithm := s.opts.Solver
	if len(args) > 0 {
		algorithm = args[0]
	}
	path, err := s.svc.Solve(s.maze, algorithm, s.maze.Start, s.maze.End)
	if err != nil {
		return err
	}
	s.path = path
	s.lastAlgo = orDefault(algorithm, domain.SolverBFS)
	s.show()
	if path.IsEmpty() {
		fmt.Fprintf(s.out, "%s found no route\n", s.lastAlgo)
	} else {
		fmt.Fprintf(s.out, "%s: %d cells, %d steps\n", s.lastAlgo, path.Len(), path.Steps())
	}
	return nil
}

// compare runs every solver on the current maze. The dead-end filler may
// legitimately refuse a maze another command has no problem with; that shows
// up as a note, not a failure.
func (s *session) compare() error {
	for _, algorithm := range domain.SolverKinds() {
		path, err := s.svc.Solve(s.maze, algorithm, s.maze.Start, s.maze.End)
		if err != nil {
			fmt.Fprintf(s.out, "%-9s %v\n", algorithm, err)
			continue
		}
		fmt.Fprintf(s.out, "%-9s %d cells, %d steps\n", algorithm, path.Len(), path.Steps())
	}
	return nil
}

func (s *session) show() {
	renderer, err := newRenderer(s.opts.Theme, s.opts.Unicode)
	if err != nil {
		// Theme was validated when set; fall back rather than die.
		renderer, _ = newRenderer("", s.opts.Unicode)
	}
	fmt.Fprint(s.out, renderer.Render(s.maze, s.path))
	if s.lastAlgo != "" {
		fmt.Fprintf(s.out, "(solved with %s)\n", s.lastAlgo)
	}
}

func (s *session) handleTheme(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: theme <%s>", strings.Join(tui.ThemeNames(), "|"))
	}
	if _, ok := tui.ThemeByName(args[0]); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", args[0], tui.ThemeNames())
	}
	s.opts.Theme = args[0]
	s.show()
	return nil
}

func (s *session) handleExport(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: export <name>")
	}
	return exportMaze(s.opts.ExportDir, args[0], s.maze, s.path)
}

func (s *session) guide() error {
	text, err := tui.RenderGuide()
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, text)
	return nil
}
