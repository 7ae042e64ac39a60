package runner

import (
	"fmt"

	"github.com/zan8in/scanflow/pkg/db/sqlite"
	"github.com/zan8in/scanflow/pkg/log"
)

// ListHistory prints recorded tool invocations, newest first.
func ListHistory(keyword string) error {
	if err := sqlite.NewSqliteDB(); err != nil {
		return err
	}
	defer sqlite.CloseX()

	records, err := sqlite.SelectX("", keyword, "1")
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No scan history recorded yet.")
		return nil
	}

	fmt.Printf("%s\n\n", log.LogColor.Title(fmt.Sprintf("Total records: %d", sqlite.Count())))
	for _, record := range records {
		status := log.LogColor.Green("ok")
		if record.ExitCode != 0 {
			status = log.LogColor.Red(fmt.Sprintf("exit %d", record.ExitCode))
		}
		fmt.Printf("%s  %s  %s  %s\n", log.LogColor.Time(record.Created), log.LogColor.Bold(record.Tool), status, record.Target)
		fmt.Printf("    %s\n", record.Command)
		fmt.Printf("    %s\n", log.LogColor.Low(record.OutputFile))
	}

	return nil
}
