package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/korjavin/homebar/pkg/cocktail"
	"github.com/korjavin/homebar/pkg/config"
	"github.com/korjavin/homebar/pkg/inventory"
	"github.com/korjavin/homebar/pkg/logger"
	"github.com/korjavin/homebar/pkg/makeable"
	"github.com/korjavin/homebar/pkg/models"
	"github.com/korjavin/homebar/pkg/storage"
)

// app bundles the services every command needs
type app struct {
	cfg       *config.Config
	store     *storage.Store
	cocktails *cocktail.Service
	inventory *inventory.Service
}

func newApp() (*app, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	return &app{
		cfg:       cfg,
		store:     store,
		cocktails: cocktail.New(store),
		inventory: inventory.New(store),
	}, nil
}

func (a *app) close() {
	if err := a.store.RunGC(); err != nil {
		logger.Global.Warn("Storage GC failed: %v", err)
	}
	if err := a.store.Close(); err != nil {
		logger.Global.Error("Failed to close storage: %v", err)
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:  "bar",
		Usage: "Track your bar inventory and see which cocktails you can make",
		Commands: []*cli.Command{
			importCmd(),
			inventoryCmd(),
			cocktailsCmd(),
			makeableCmd(),
		},
	}
}

func importCmd() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import cocktail book and inventory fixtures from JSON files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "cocktails",
				Usage: "Path to the cocktail book JSON file",
			},
			&cli.StringFlag{
				Name:  "inventory",
				Usage: "Path to the inventory JSON file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			bookPath := cmd.String("cocktails")
			if bookPath == "" {
				bookPath = a.cfg.CocktailBookPath
			}
			invPath := cmd.String("inventory")
			if invPath == "" {
				invPath = a.cfg.InventoryPath
			}

			if _, err := os.Stat(bookPath); err == nil {
				n, err := a.cocktails.ImportFromJSON(bookPath)
				if err != nil {
					return err
				}
				fmt.Printf("Imported %d cocktails\n", n)
			}

			if _, err := os.Stat(invPath); err == nil {
				n, err := a.inventory.ImportFromJSON(invPath)
				if err != nil {
					return err
				}
				fmt.Printf("Imported %d bottles\n", n)
			}

			return nil
		},
	}
}

func inventoryCmd() *cli.Command {
	return &cli.Command{
		Name:  "inventory",
		Usage: "Manage the bottles on your shelf",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a bottle to the inventory",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Usage: "Declared type (e.g. gin, whiskey, juice)"},
					&cli.StringFlag{Name: "category", Usage: "Category (e.g. spirit, mixer)"},
					&cli.StringFlag{Name: "unit", Value: "ml", Usage: "Measurement unit"},
					&cli.FloatFlag{Name: "quantity", Value: 700, Usage: "Bottle size"},
					&cli.FloatFlag{Name: "abv", Usage: "Alcohol by volume"},
					&cli.FloatFlag{Name: "amount", Value: -1, Usage: "Current amount (defaults to quantity)"},
					&cli.BoolFlag{Name: "open", Usage: "Bottle is already open"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()
					if name == "" {
						return fmt.Errorf("bottle name is required")
					}

					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					amount := cmd.Float("amount")
					if amount < 0 {
						amount = cmd.Float("quantity")
					}

					key, err := a.inventory.Add(name, models.InventoryItem{
						Type:       cmd.String("type"),
						Category:   cmd.String("category"),
						Unit:       cmd.String("unit"),
						Quantity:   cmd.Float("quantity"),
						ABV:        cmd.Float("abv"),
						IsOpen:     cmd.Bool("open"),
						CurrAmount: amount,
					})
					if err != nil {
						return err
					}

					fmt.Printf("Added %s\n", key)
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List all bottles",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					inv, err := a.inventory.LoadAll()
					if err != nil {
						return err
					}

					for key, item := range inv {
						fmt.Printf("%-30s %-12s %.0f/%.0f %s\n",
							key, item.Type, item.CurrAmount, item.Quantity, item.Unit)
					}
					return nil
				},
			},
			{
				Name:      "set-amount",
				Usage:     "Set the current amount of a bottle",
				ArgsUsage: "NAME AMOUNT",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.Args().Get(0)
					amountStr := cmd.Args().Get(1)
					if name == "" || amountStr == "" {
						return fmt.Errorf("usage: bar inventory set-amount NAME AMOUNT")
					}

					amount, err := strconv.ParseFloat(amountStr, 64)
					if err != nil {
						return fmt.Errorf("invalid amount %q: %w", amountStr, err)
					}

					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					return a.inventory.SetAmount(name, amount)
				},
			},
			{
				Name:      "remove",
				Usage:     "Remove a bottle from the inventory",
				ArgsUsage: "NAME",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()
					if name == "" {
						return fmt.Errorf("bottle name is required")
					}

					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					return a.inventory.Remove(name)
				},
			},
		},
	}
}

func cocktailsCmd() *cli.Command {
	return &cli.Command{
		Name:  "cocktails",
		Usage: "Browse and update the cocktail book",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a single cocktail to the book",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "made-from",
						Usage: "Required main ingredients, comma separated (\"gin or vodka, dry vermouth\")",
					},
					&cli.StringSliceFlag{
						Name:  "ingredient",
						Usage: "Full ingredient line with measures, repeatable",
					},
					&cli.StringFlag{Name: "instructions", Usage: "Preparation instructions"},
					&cli.StringFlag{Name: "method", Usage: "Prep method (e.g. shaken, stirred)"},
					&cli.StringFlag{Name: "flavor", Usage: "Flavor profile"},
					&cli.StringFlag{Name: "glass", Usage: "Glass type"},
					&cli.StringFlag{Name: "garnish", Usage: "Garnish"},
					&cli.FloatFlag{Name: "abv", Usage: "Alcohol by volume of the finished drink"},
					&cli.BoolFlag{Name: "easy", Usage: "Easy to make"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()
					if name == "" {
						return fmt.Errorf("cocktail name is required")
					}

					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					err = a.cocktails.Add(models.Cocktail{
						Name:         name,
						ABV:          cmd.Float("abv"),
						IsEasyToMake: cmd.Bool("easy"),
						Ingredients:  cmd.StringSlice("ingredient"),
						Instructions: cmd.String("instructions"),
						PrepMethod:   cmd.String("method"),
						MadeFrom:     models.ParseMadeFrom(cmd.String("made-from")),
						Flavor:       cmd.String("flavor"),
						GlassType:    cmd.String("glass"),
						Garnish:      cmd.String("garnish"),
					})
					if err != nil {
						return err
					}

					fmt.Printf("Added %s\n", name)
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List every cocktail in the book",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					cocktails, err := a.cocktails.LoadAll()
					if err != nil {
						return err
					}

					for _, c := range cocktails {
						fav := " "
						if c.IsFavorite {
							fav = "*"
						}
						fmt.Printf("%s %-30s %s\n", fav, c.Name, c.Flavor)
					}
					return nil
				},
			},
			{
				Name:      "made",
				Usage:     "Record that you made a cocktail",
				ArgsUsage: "NAME",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()
					if name == "" {
						return fmt.Errorf("cocktail name is required")
					}

					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					return a.cocktails.RecordMade(name)
				},
			},
			{
				Name:      "favorite",
				Usage:     "Mark a cocktail as a favorite",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "unset", Usage: "Remove the favorite mark instead"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()
					if name == "" {
						return fmt.Errorf("cocktail name is required")
					}

					a, err := newApp()
					if err != nil {
						return err
					}
					defer a.close()

					return a.cocktails.SetFavorite(name, !cmd.Bool("unset"))
				},
			},
		},
	}
}

func makeableCmd() *cli.Command {
	return &cli.Command{
		Name:  "makeable",
		Usage: "Show the cocktails you can make with the bottles on hand",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			cocktails, err := a.cocktails.LoadAll()
			if err != nil {
				return err
			}
			inv, err := a.inventory.LoadAll()
			if err != nil {
				return err
			}

			cache := makeable.NewCache(makeable.NewStoredFingerprints(a.store))
			result, err := cache.GetMakeable(cocktails, inv)
			if err != nil {
				return err
			}

			if len(result) == 0 {
				fmt.Println("No cocktails can be made with the current inventory.")
				return nil
			}

			fmt.Printf("%d cocktails you can make:\n", len(result))
			for _, c := range result {
				flavor := c.Flavor
				if flavor == "" {
					flavor = "unknown"
				}
				fmt.Printf("  %s (%s)\n", c.Name, flavor)
			}
			return nil
		},
	}
}
