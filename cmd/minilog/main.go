// Command minilog loads logic programs and answers queries, either from
// flags or interactively.
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/rdmiranda/minilog/logic"
	"github.com/rdmiranda/minilog/parser"
	"github.com/rdmiranda/minilog/solver"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"
)

var (
	consultFiles = pflag.StringSlice("consult", nil, "Files to consult, in order")
	query        = pflag.String("query", "", "Initial query to issue")
	search       = pflag.String("search", "dfs", "Search strategy: dfs or bfs")
	maxSolutions = pflag.Int("max-solutions", 10, "Solutions to enumerate per query in non-interactive mode")
	interactive  = pflag.Bool("interactive", true, "Whether the REPL is interactive")
)

type inputState int

const (
	readingQuery inputState = iota
	enumerateSolutions
)

type ctx struct {
	interrupt chan os.Signal
	solver    *solver.Solver
	readline  *readline.Instance
}

func main() {
	pflag.Parse()
	if !*interactive && len(*query) == 0 {
		log.Fatal("No query provided for non-interactive run")
	}

	ctx := ctx{}
	ctx.interrupt = make(chan os.Signal, 1)
	signal.Notify(ctx.interrupt, syscall.SIGINT)

	ctx.solver = solver.New(&logic.Program{})
	switch *search {
	case "dfs":
		ctx.solver.Strategy = solver.DepthFirst
	case "bfs":
		ctx.solver.Strategy = solver.BreadthFirst
	default:
		log.Fatalf("Unknown search strategy %q", *search)
	}
	for _, file := range *consultFiles {
		consultFile(ctx.solver, file)
	}

	if !*interactive {
		ctx.runBatch()
		return
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 "?- ",
		HistoryFile:            "/tmp/minilog-history",
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()
	ctx.readline = rl

	ctx.mainLoop()
}

func consultFile(s *solver.Solver, filename string) {
	bs, err := ioutil.ReadFile(filename)
	if err != nil {
		log.Print(err)
		return
	}
	if err := s.Consult(string(bs)); err != nil {
		log.Print(err)
		return
	}
}

func (ctx ctx) runBatch() {
	goal, err := parser.Query(*query)
	if err != nil {
		log.Fatal(err)
	}
	solutions, cancel := ctx.solver.Query(goal...)
	defer cancel()
	n := 0
	for result := range solutions {
		if result.Err != nil {
			log.Fatal(result.Err)
		}
		printSolution(result.Solution, true)
		n++
		if n >= *maxSolutions {
			return
		}
	}
	if n == 0 {
		printSolution(nil, false)
	}
}

func (ctx ctx) mainLoop() {
	state := readingQuery
	var solutions <-chan solver.Result
	var cancel func()
	if len(*query) > 0 {
		goal, err := parser.Query(*query)
		if err != nil {
			log.Fatal(err)
		}
		solutions, cancel = ctx.solver.Query(goal...)
		state = enumerateSolutions
	}
	for {
		switch state {
		default:
			log.Print("Invalid state:", state)
			return
		case readingQuery:
			goal, isClose := ctx.readQuery()
			if isClose {
				return
			}
			if goal == nil {
				continue
			}
			solutions, cancel = ctx.solver.Query(goal...)
			state = enumerateSolutions
		case enumerateSolutions:
			if isClose := ctx.solutionState(solutions, cancel); isClose {
				state = readingQuery
			}
		}
	}
}

func (ctx ctx) readQuery() ([]logic.Term, bool) {
	ctx.readline.SetPrompt("?- ")
	var lines []string
	for {
		line, err := ctx.readline.Readline()
		if err != nil {
			return nil, true
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
		if !strings.HasSuffix(line, ".") {
			ctx.readline.SetPrompt("|  ")
			continue
		}
		break
	}
	text := strings.Join(lines, " ")
	ctx.readline.SaveHistory(text)
	goal, err := parser.Query(text)
	if err != nil {
		log.Print(err)
		return nil, false
	}
	return goal, false
}

func (ctx ctx) solutionState(solutions <-chan solver.Result, cancel func()) bool {
	select {
	case result, ok := <-solutions:
		if !ok {
			printSolution(nil, false)
			return true
		}
		if result.Err != nil {
			log.Print(result.Err)
			return true
		}
		printSolution(result.Solution, true)
		if isClose := ctx.readCommand(); isClose {
			cancel()
			return true
		}
		return false
	case <-ctx.interrupt:
		cancel()
		return true
	}
}

func printSolution(solution map[logic.Var]logic.Term, ok bool) {
	if !ok {
		fmt.Println("no")
		return
	}
	if len(solution) == 0 {
		fmt.Println("yes")
		return
	}
	vars := make([]logic.Var, 0, len(solution))
	for x := range solution {
		vars = append(vars, x)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	entries := make([]string, len(vars))
	for i, x := range vars {
		entries[i] = fmt.Sprintf("%v = %v", x, solution[x])
	}
	fmt.Println(strings.Join(entries, ", "))
}

func (ctx ctx) readCommand() bool {
	for {
		ctx.readline.SetPrompt("")
		line, err := ctx.readline.Readline()
		if err != nil {
			return true
		}
		line = strings.TrimSpace(line)
		if line == ";" {
			return false
		}
		if line == "." || line == "" {
			return true
		}
		log.Print("Expecting '.' or ';'")
	}
}
