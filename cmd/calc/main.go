package main

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/fatih/color"

	"github.com/volsungdenichor/calc"
)

var cli struct {
	Expr    []string           `arg:"" optional:"" help:"Expressions to evaluate instead of starting a session."`
	Given   map[string]float64 `short:"g" help:"Predefined variables as name=value pairs."`
	History int                `default:"10" help:"Number of history entries to keep."`
	Echo    bool               `help:"Print parse trees before results."`
	NoColor bool               `help:"Disable colored output."`
}

var (
	promptColor = color.New(color.FgGreen)
	resultColor = color.New(color.FgYellow)
	indexColor  = color.New(color.FgHiBlack)
	exprColor   = color.New(color.FgGreen)
	valueColor  = color.New(color.FgBlue)
)

type entry struct {
	Expr   string
	Result float64
}

// history keeps the most recent results, newest first.
type history struct {
	max     int
	entries []entry
}

func (h *history) push(expr string, result float64) {
	if h.max <= 0 {
		return
	}
	if len(h.entries) >= h.max {
		h.entries = h.entries[:h.max-1]
	}
	h.entries = append(h.entries, entry{})
	copy(h.entries[1:], h.entries)
	h.entries[0] = entry{Expr: expr, Result: result}
}

func main() {
	log.SetFlags(0)
	kong.Parse(&cli,
		kong.Name("calc"),
		kong.Description("An interactive expression calculator. Results bind to \"ans\"."))
	if cli.NoColor {
		color.NoColor = true
	}

	p := calc.New()
	ctx := calc.NewContext().Set("pi", math.Pi)
	for name, v := range cli.Given {
		ctx.Set(name, v)
	}

	if len(cli.Expr) > 0 {
		for _, line := range cli.Expr {
			res, err := eval(p, ctx, line)
			if err != nil {
				log.Fatalf("%s: %v", line, err)
			}
			ctx.Set("ans", res)
			fmt.Println(res)
		}
		return
	}
	repl(p, ctx)
}

func repl(p *calc.Parser, ctx *calc.Context) {
	hist := &history{max: cli.History}
	sc := bufio.NewScanner(os.Stdin)
	for {
		promptColor.Print("> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
		case "quit":
			return
		case "vars":
			for _, name := range ctx.Names() {
				v, _ := ctx.Lookup(name)
				fmt.Printf("  %s = %v\n", name, v)
			}
		case "history":
			for i, e := range hist.entries {
				indexColor.Printf("%2d. ", i)
				exprColor.Print(e.Expr)
				valueColor.Printf(" = %v\n", e.Result)
			}
		case "dump":
			vars := make(map[string]float64)
			for _, name := range ctx.Names() {
				vars[name], _ = ctx.Lookup(name)
			}
			repr.Println(struct {
				Vars    map[string]float64
				History []entry
			}{vars, hist.entries})
		default:
			res, err := eval(p, ctx, line)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			ctx.Set("ans", res)
			hist.push(line, res)
			resultColor.Printf("ans = %v\n", res)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

func eval(p *calc.Parser, ctx *calc.Context, line string) (float64, error) {
	expr, err := p.Parse(line)
	if err != nil {
		return 0, err
	}
	if expr == nil {
		return 0, fmt.Errorf("cannot parse expression")
	}
	if cli.Echo {
		fmt.Print(expr)
	}
	return expr.Eval(ctx)
}
