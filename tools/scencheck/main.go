package main

import (
	"cognitive-tactics/internal/scenario"
	"cognitive-tactics/pkg/logger"
	"fmt"
	"os"
	"strconv"
)

func main() {
	if len(os.Args) < 3 {
		printHelp()
		return
	}
	logger.Init()

	sc, err := scenario.Load(os.Args[2])
	if err != nil {
		fmt.Printf("Invalid scenario: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		if _, err := scenario.Build(sc, nil); err != nil {
			fmt.Printf("Invalid scenario: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok (%d characters)\n", sc.Name, len(sc.Characters))
	case "render":
		g, err := scenario.Build(sc, nil)
		if err != nil {
			fmt.Printf("Invalid scenario: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(g.Map)
	case "simulate":
		turns := 50
		if len(os.Args) > 3 {
			if turns, err = strconv.Atoi(os.Args[3]); err != nil {
				fmt.Printf("Invalid turn count: %v\n", err)
				os.Exit(1)
			}
		}
		g, err := scenario.Build(sc, nil)
		if err != nil {
			fmt.Printf("Invalid scenario: %v\n", err)
			os.Exit(1)
		}
		for i := 0; i < turns && !g.Over(); i++ {
			events, err := g.RunTurn()
			for _, e := range events {
				fmt.Printf("[%d] %s\n", g.Turn, e.Text)
			}
			if err != nil {
				fmt.Printf("Turn %d failed: %v\n", g.Turn, err)
				os.Exit(1)
			}
		}
		fmt.Println(g.Map)
		for _, c := range g.Registry.All() {
			fmt.Printf("%-10s %s hp=%d at %s (%s)\n", c.Name, c.Symbol, c.HitPoints, c.Pos, c.StrategyName())
		}
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`Scenario Check - проверка файлов сценариев
Commands:
  validate <file>          - разобрать сценарий и расставить персонажей
  render <file>            - показать стартовую карту
  simulate <file> [turns]  - прогнать скрипт сценария (по умолчанию 50 ходов)`)
}
