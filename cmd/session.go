package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/simulator"
	"github.com/spf13/cobra"
)

var (
	sessionScript string
	sessionASCII  bool
)

// errQuit stops the event loop
var errQuit = errors.New("quit")

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Drive the simulator with host events, one per line",
	Long: `Run an interactive simulator session. Each input line is one host event:

  select <Load|Height|Length|Base>   open the keypad for a parameter
  key <token>                        press a keypad key: 0-9 . Del Clear Confirm
  drag <ratio>                       move the load to ratio·L (clamped to [0, 1])
  material <name>                    swap the material
  solve                              solve the current beam
  reset                              restore the initial beam
  quit                               end the session

Blank lines and lines starting with # are ignored. Events come from stdin
unless --script is given.

Examples:
  # Set the load to 2500 N and solve
  printf 'select Load\nkey Clear\nkey 2\nkey 5\nkey 0\nkey 0\nkey Confirm\n' | gobeam session

  # Replay a recorded session
  gobeam session --script events.txt --ascii`,
	Run: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.Flags().StringVarP(&sessionScript, "script", "s", "", "Read events from a file instead of stdin")
	sessionCmd.Flags().BoolVar(&sessionASCII, "ascii", false, "Draw every rendered profile as an ASCII chart")
}

func runSession(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	cfg, logger, err := loadConfig()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	in := cmd.InOrStdin()
	if sessionScript != "" {
		f, err := os.Open(sessionScript)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		defer f.Close()
		in = f
	}

	r := &terminalRenderer{out: out, ascii: sessionASCII}
	sim, err := simulator.New(cfg, r, logger)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	r.sim = sim

	if err := playEvents(in, out, sim); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

// playEvents feeds each event line to the simulator. Rejected events are
// reported and the session continues.
func playEvents(in io.Reader, out io.Writer, sim *simulator.Simulator) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		err := dispatch(sim, text)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "Error (line %d): %v\n", line, err)
		}
	}
	return scanner.Err()
}

func dispatch(sim *simulator.Simulator, text string) error {
	fields := strings.Fields(text)
	verb := strings.ToLower(fields[0])
	arg := ""
	if len(fields) > 1 {
		arg = strings.Join(fields[1:], " ")
	}

	needArg := func() error {
		if arg == "" {
			return fmt.Errorf("%s needs an argument", verb)
		}
		return nil
	}

	switch verb {
	case "select":
		if err := needArg(); err != nil {
			return err
		}
		return sim.SelectParameter(arg)
	case "key":
		if err := needArg(); err != nil {
			return err
		}
		return sim.KeypadEvent(arg)
	case "drag":
		if err := needArg(); err != nil {
			return err
		}
		ratio, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid drag ratio %q", arg)
		}
		return sim.DragLoad(ratio)
	case "material":
		if err := needArg(); err != nil {
			return err
		}
		return sim.SelectMaterial(arg)
	case "solve":
		_, err := sim.Solve()
		return err
	case "reset":
		sim.Reset()
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown event %q", verb)
	}
}

// terminalRenderer prints simulator output as text lines
type terminalRenderer struct {
	out   io.Writer
	ascii bool
	sim   *simulator.Simulator
}

func (r *terminalRenderer) DisplayParameter(name, value, unit string) {
	fmt.Fprintf(r.out, "  %s = %s %s\n", name, value, unit)
}

func (r *terminalRenderer) DisplayKeypad(text string) {
	fmt.Fprintf(r.out, "  [ %s ]\n", text)
}

func (r *terminalRenderer) RenderProfile(deflections []float64, loadSampleIndex int) {
	minV, at := 0.0, 0
	for i, v := range deflections {
		if v < minV {
			minV, at = v, i
		}
	}
	fmt.Fprintf(r.out, "  profile: %d samples, load at station %d, lowest point %.4g at station %d\n",
		len(deflections), loadSampleIndex, minV, at)

	if r.ascii && r.sim != nil {
		p := r.sim.Params()
		stations := make([]float64, len(deflections))
		for i := range stations {
			stations[i] = float64(i) * p.Length() / float64(len(deflections))
		}
		fmt.Fprint(r.out, diagram.DrawASCIIProfile(diagram.ProfileDiagramData{
			Length:          p.Length(),
			Load:            p.Load(),
			LoadPosition:    p.LoadPosition(),
			Material:        p.Material().Name,
			Stations:        stations,
			Deflections:     deflections,
			LoadSampleIndex: loadSampleIndex,
		}, 8, 60))
	}
}

func (r *terminalRenderer) ReportVerdict(v beam.Verdict) {
	mark := "✓"
	if v == beam.Overstressed {
		mark = "✗"
	}
	fmt.Fprintf(r.out, "  verdict: %s %s\n", mark, v)
}
