package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/martindb/martindb"
)

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func openDatabase(cmd *cobra.Command) (*martindb.Database, *martindb.Store) {
	file, _ := cmd.Flags().GetString("file")
	store := martindb.NewStore(file)

	db, err := store.Load()
	if err != nil {
		fatal("%v", err)
	}

	return db, store
}

func runRepl(cmd *cobra.Command, args []string) {
	db, store := openDatabase(cmd)
	martindb.RunRepl(db, store)
}

func runServe(cmd *cobra.Command, args []string) {
	db, store := openDatabase(cmd)

	seqURL, _ := cmd.Flags().GetString("seq")
	logger, closeLogger := martindb.SetupLogger(seqURL)
	defer closeLogger()

	addr, _ := cmd.Flags().GetString("addr")
	srv := martindb.NewServer(db, store, logger)

	logger.Info("serving", "addr", addr, "file", store.Path)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		fatal("%v", err)
	}
}

func main() {
	root := &cobra.Command{
		Use:   "martindb",
		Short: "Minimal single-node relational store",
	}
	root.PersistentFlags().String("file", martindb.DefaultFile, "database snapshot file")

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive shell",
		Args:  cobra.NoArgs,
		Run:   runRepl}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP front end",
		Args:  cobra.NoArgs,
		Run:   runServe}
	cmd.Flags().String("addr", ":3030", "listen address")
	cmd.Flags().String("seq", "", "Seq ingestion URL for structured logs")
	root.AddCommand(cmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
