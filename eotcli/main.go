package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/eot/eotfile"
	"github.com/npillmayer/eot/internal/fontload"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'eot.tools'
func tracer() tracing.Trace {
	return tracing.Select("eot.tools")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.eot.tools": "Info",
		"trace.eot.file":  "Error",
		"trace.eot.query": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	eotname := flag.String("eot", "", "EOT file to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)             // will set the correct level later
	pterm.Info.Println("Welcome to Embedded OpenType CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("eot > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load container to use
	if err := intp.loadEOT(*eotname); err != nil { // file name provided by flag
		tracer().Errorf("%v", err)
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
		tracing.Select("eot.file").SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	path string
	rec  *eotfile.Record
	repl *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.rec == nil {
		return "()"
	}
	return fmt.Sprintf("( %s %s )", intp.rec.FullName, intp.rec.Version)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	HEADER
	NAMES
	ROOTS
	EUDC
	FLAGS
	TABLES
	CHECK
	EXTRACT
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"header":  HEADER,
	"names":   NAMES,
	"roots":   ROOTS,
	"eudc":    EUDC,
	"flags":   FLAGS,
	"tables":  TABLES,
	"check":   CHECK,
	"extract": EXTRACT,
}

var opNames = []string{
	"quit",
	"help",
	"header",
	"names",
	"roots",
	"eudc",
	"flags",
	"tables",
	"check",
	"extract",
}

// parseCommand splits a line into steps, e.g. "names roots" or "extract:out.ttf".
func parseCommand(line string) (*Command, error) {
	command := &Command{}
	for i := range command.op {
		command.op[i].code = NOOP
	}
	steps := strings.Fields(line)
	if len(steps) > len(command.op) {
		return nil, fmt.Errorf("too many steps in command: %d", len(steps))
	}
	command.count = len(steps)
	for i, step := range steps {
		c := strings.SplitN(step, ":", 2) // e.g.  "extract:font.ttf" or "help:flags"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		if code == QUIT {
			return command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		if command.op[i].arg == "" {
			tracer().Debugf("%s", opNames[code])
		} else {
			tracer().Debugf("%s: argument '%s'", opNames[code], command.op[i].arg)
		}
	}
	return command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	HEADER:  headerOp,
	NAMES:   namesOp,
	ROOTS:   rootsOp,
	EUDC:    eudcOp,
	FLAGS:   flagsOp,
	TABLES:  tablesOp,
	CHECK:   checkOp,
	EXTRACT: extractOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Container Loading ------------------------------------------------

func (intp *Intp) loadEOT(eotname string) (err error) {
	if eotname == "" {
		return ERR_NO_FILE
	}
	intp.rec, err = fontload.LoadEOT(eotname)
	if err != nil {
		if errors.Is(err, eotfile.ErrUnsupportedCompression) || errors.Is(err, eotfile.ErrUnsupportedEncryption) {
			pterm.Error.Printf("%s uses a font data encoding this tool cannot read\n", eotname)
		}
		return fmt.Errorf("cannot load EOT %s: %w", eotname, err)
	}
	intp.path = eotname
	tracer().Infof("loaded EOT %s, version %s", intp.rec.FullName, intp.rec.Version)
	return nil
}

// ----------------------------------------------------------------------

var ERR_NO_FILE = errors.New("no EOT file given; use -eot <file>")
var ERR_NO_RECORD = errors.New("no EOT container loaded")

func (intp *Intp) checkRecord() error {
	if intp.rec == nil {
		return ERR_NO_RECORD
	}
	return nil
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}
