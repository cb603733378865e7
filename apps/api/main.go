package main

import (
	stdlog "log"
	"os"

	echoapi "github.com/dkimathi/darasa/apps/api/echo"
	"github.com/dkimathi/darasa/core"
	"github.com/dkimathi/darasa/core/collab"
	logsvc "github.com/dkimathi/darasa/services/logger"
	inmemdb "github.com/dkimathi/darasa/storage/database/inmem"
	sqlitedb "github.com/dkimathi/darasa/storage/database/sqlite"
)

func main() {
	conf := core.NewConfig()
	std := stdlog.New(os.Stdout, conf.AppName+" ", stdlog.LstdFlags|stdlog.Lshortfile)

	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up storage
	var repo collab.Repository
	switch conf.DB.Engine {
	case "sqlite":
		db, err := sqlitedb.Open(conf.DB.Path)
		if err != nil {
			logger.Fatal("opening sqlite database", err)
		}
		defer func() { _ = db.Close() }()
		repo = sqlitedb.NewRepository(db)
	default:
		db, err := inmemdb.Open()
		if err != nil {
			logger.Fatal("opening in-memory database", err)
		}
		repo = inmemdb.NewRepository(db)
	}

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Address: conf.Server.Address(),
		AppConf: conf,
		Repo:    repo,
	})
	logger.Info("starting API server", map[string]interface{}{"address": conf.Server.Address(), "engine": conf.DB.Engine})
	app.Start()
}
