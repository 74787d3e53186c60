// Command flight_roster is the entry point for the flight roster registry.
//
// Usage:
//
//	flight_roster [menu] [options]   interactive menu (default)
//	flight_roster seed [options]     reset the database to the sample data
//	flight_roster help
//
// Options (both commands):
//
//	-config FILE        config file (yaml, toml or json)
//	-driver NAME        sqlite (default), sqlite3 or postgres
//	-db PATH            SQLite database file (default: FlightManagement.db)
//	-pg-host HOST       PostgreSQL host (default: localhost)
//	-pg-port PORT       PostgreSQL port (default: 5432)
//	-pg-database DB     PostgreSQL database (default: flight_roster)
//	-pg-user USER       PostgreSQL user (default: flight_roster)
//	-pg-password PASS   PostgreSQL password (default: flight_roster)
//	-v                  log registry changes to stderr
//
// Flags override the config file only when given explicitly.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"flight_roster/internal/config"
	"flight_roster/internal/menu"
	"flight_roster/internal/roster"
	"flight_roster/internal/seed"
	"flight_roster/internal/storage"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "flight_roster - commands:")
	fmt.Fprintln(w, "  menu  - interactive flight management menu (default)")
	fmt.Fprintln(w, "  seed  - reset the database and load the sample roster")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  flight_roster [menu] [-db FlightManagement.db] [-seed] [-v]")
	fmt.Fprintln(w, "  flight_roster seed [-db FlightManagement.db]")
	fmt.Fprintln(w, "  flight_roster menu -driver postgres -pg-host localhost -pg-database flight_roster")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - Settings can also come from -config FILE; flags given explicitly win.")
	fmt.Fprintln(w, "  - The sqlite3 driver is only available in cgo builds.")
	fmt.Fprintln(w, "")
}

func main() {
	log.SetFlags(0)

	// No command, or flags straight away, means the menu.
	if len(os.Args) < 2 || (strings.HasPrefix(os.Args[1], "-") && !isHelp(os.Args[1])) {
		runMenu(os.Args[1:])
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch {
	case cmd == "menu":
		runMenu(os.Args[2:])
	case cmd == "seed":
		runSeed(os.Args[2:])
	case isHelp(cmd):
		usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage(os.Stderr)
		os.Exit(2)
	}
}

func isHelp(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

// dbFlags are the connection flags shared by every command.
type dbFlags struct {
	configPath *string
	driver     *string
	path       *string
	pgHost     *string
	pgPort     *int
	pgDB       *string
	pgUser     *string
	pgPassword *string
	verbose    *bool
}

func addDBFlags(fs *flag.FlagSet) *dbFlags {
	def := storage.DefaultConfig()
	return &dbFlags{
		configPath: fs.String("config", "", "Config file (yaml, toml or json)"),
		driver:     fs.String("driver", string(def.Driver), "Database driver: sqlite, sqlite3 or postgres"),
		path:       fs.String("db", def.Path, "SQLite database file"),
		pgHost:     fs.String("pg-host", def.Postgres.Host, "PostgreSQL host"),
		pgPort:     fs.Int("pg-port", def.Postgres.Port, "PostgreSQL port"),
		pgDB:       fs.String("pg-database", def.Postgres.Database, "PostgreSQL database"),
		pgUser:     fs.String("pg-user", def.Postgres.User, "PostgreSQL user"),
		pgPassword: fs.String("pg-password", def.Postgres.Password, "PostgreSQL password"),
		verbose:    fs.Bool("v", false, "Log registry changes to stderr"),
	}
}

// load reads the config file and applies the flags that were set on fs.
func (f *dbFlags) load(fs *flag.FlagSet) config.Config {
	cfg, err := config.Load(*f.configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "driver":
			cfg.Database.Driver = *f.driver
		case "db":
			cfg.Database.Path = *f.path
		case "pg-host":
			cfg.Database.Postgres.Host = *f.pgHost
		case "pg-port":
			cfg.Database.Postgres.Port = *f.pgPort
		case "pg-database":
			cfg.Database.Postgres.Database = *f.pgDB
		case "pg-user":
			cfg.Database.Postgres.User = *f.pgUser
		case "pg-password":
			cfg.Database.Postgres.Password = *f.pgPassword
		case "v":
			cfg.Verbose = *f.verbose
		}
	})
	return cfg
}

// open connects to the configured store and builds the registry on top.
func open(ctx context.Context, cfg config.Config) (*storage.DB, *roster.Registry) {
	db, err := storage.Open(ctx, cfg.Storage())
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	var opts []roster.Option
	if cfg.Verbose {
		opts = append(opts, roster.WithLogger(log.New(os.Stderr, "roster: ", log.LstdFlags)))
	}
	return db, roster.New(db, opts...)
}

func runMenu(args []string) {
	fs := flag.NewFlagSet("menu", flag.ExitOnError)
	df := addDBFlags(fs)
	reseed := fs.Bool("seed", false, "Reset the database to the sample roster before starting")
	_ = fs.Parse(args)

	cfg := df.load(fs)
	ctx := context.Background()

	db, reg := open(ctx, cfg)
	defer db.Close()

	if *reseed {
		if _, err := seed.Load(ctx, db, reg); err != nil {
			log.Fatalf("Error seeding database: %v", err)
		}
	} else if err := db.CreateSchema(ctx); err != nil {
		log.Fatalf("Error preparing database: %v", err)
	}

	if err := menu.New(reg, os.Stdin, os.Stdout).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSeed(args []string) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	df := addDBFlags(fs)
	_ = fs.Parse(args)

	cfg := df.load(fs)
	ctx := context.Background()

	db, reg := open(ctx, cfg)
	defer db.Close()

	counts, err := seed.Load(ctx, db, reg)
	if err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	log.Printf("Database (%s) reset with sample data: %d airports, %d pilots, %d flights",
		db.Driver(), counts.Airports, counts.Pilots, counts.Flights)
}
