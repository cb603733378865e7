package main

import (
	"context"
	"errors"
	"flag"
	stdlog "log"
	"os"

	"github.com/dkimathi/darasa/core"
	"github.com/dkimathi/darasa/core/collab"
	logsvc "github.com/dkimathi/darasa/services/logger"
	localdb "github.com/dkimathi/darasa/storage/local"
	remotedb "github.com/dkimathi/darasa/storage/remote"
)

func main() {
	name := flag.String("name", "", "Your display name.")
	rep := flag.Bool("rep", false, "Log in as the class representative.")
	flag.Parse()

	conf := core.NewConfig()
	std := stdlog.New(os.Stdout, "", stdlog.LstdFlags)
	logger := logsvc.NewConsoleLogger(std)

	roles := []string{collab.RoleStudent}
	if *rep {
		roles = []string{collab.RoleClassRep}
	}

	ctx := context.Background()

	// the backend mode is decided exactly once per session
	mode := remotedb.Probe(ctx, conf.API.BaseURL, conf.API.ProbeTimeout, logger)

	var backend collab.Backend
	if mode == collab.ModeRemote {
		backend = remotedb.NewBackend(conf.API.BaseURL)
	} else {
		var err error
		backend, err = localdb.OpenBackend(conf.Local.DataDir)
		if err != nil {
			logger.Fatal("opening local store", err)
		}
	}
	defer func() { _ = backend.Close() }()

	sess, err := collab.NewSession(collab.Login{Username: *name, Roles: roles}, mode)
	if err != nil {
		flag.Usage()
		logger.Fatal("login failed", err)
	}

	svc := collab.NewService(sess, backend, logger, conf)
	svc.LoadAll(ctx)

	cli := &commandLine{svc: svc, conf: conf}
	if err := cli.run(ctx, flag.Args()); err != nil && !errors.Is(err, errHelp) {
		logger.Fatal(err.Error(), *sess)
	}
}
