package db

import (
	"fmt"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/zan8in/gologger"
	snowflake "github.com/zan8in/pins/snowflake"
)

// Record is one external tool invocation inside a scan session.
type Record struct {
	ID         int64
	SessionID  string
	Tool       string // nmap or gobuster
	Target     string
	Command    string // full command line, display form
	OutputFile string
	ExitCode   int    // -1 when the tool never ran
	Stderr     string // excerpt, trimmed
	Duration   int64  // milliseconds
	Created    string
}

var (
	LIMIT        = "100"
	DBName       = "scanflow"
	TableName    = "history"
	SqliteCreate = `CREATE TABLE IF NOT EXISTS "history" (
		"id" INTEGER NOT NULL DEFAULT '',
		"sessionid" text NOT NULL DEFAULT '',
		"tool" text NOT NULL DEFAULT '',
		"target" TEXT NOT NULL DEFAULT '',
		"command" TEXT NOT NULL DEFAULT '',
		"outputfile" TEXT NOT NULL DEFAULT '',
		"exitcode" INTEGER NOT NULL DEFAULT 0,
		"stderr" TEXT NOT NULL DEFAULT '',
		"duration" INTEGER NOT NULL DEFAULT 0,
		"created" TEXT NOT NULL DEFAULT '',
		PRIMARY KEY ("id")
	  );

	  CREATE INDEX "idx_session"
	  ON "history" (
		"sessionid" ASC
	  );

	  CREATE INDEX "idx_tool"
	  ON "history" (
		"tool"
	  );

	  CREATE INDEX "idx_target"
	  ON "history" (
		"target"
	  );`

	SessionID string
)

var SnowFlake *snowflake.Snowflake

func init() {
	SessionID = createSessionID()
	if err := NewSnowFlake(); err != nil {
		gologger.Fatal().Msgf("New SnowFlake failed: %v", err)
	}
}

func createSessionID() string {
	timestamp := time.Now().UnixNano()
	source := rand.NewSource(time.Now().UnixNano())
	randomGenerator := rand.New(source)
	randomNum := randomGenerator.Intn(10000)
	sessionID := fmt.Sprintf("%d%d", timestamp, randomNum)
	return sessionID
}

func DbName() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	path := path.Join(homeDir, ".config", "scanflow")
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return ""
	}

	return filepath.Join(path, DBName+".db")
}

func NewSnowFlake() error {
	if node, err := snowflake.NewSnowflake(1); err != nil {
		return err
	} else {
		SnowFlake = node
		return nil
	}
}
