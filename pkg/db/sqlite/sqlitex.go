package sqlite

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/logoove/sqlite"
	randutil "github.com/zan8in/pins/rand"
	db2 "github.com/zan8in/scanflow/pkg/db"
	"github.com/zan8in/scanflow/pkg/log"
)

var dbx *sqlx.DB
var insertChannel chan *db2.Record
var wg sync.WaitGroup

// 可根据实际负载调整
var workerCount = 4

func InitX() error {

	// 使用带缓冲通道，避免生产者阻塞
	insertChannel = make(chan *db2.Record, 1024)

	// 启动固定数量的 worker，避免无界并发写入导致 database is locked
	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go saveToDatabaseX()
	}

	return nil
}

func SetRecordX(record *db2.Record) {
	insertChannel <- record
}

func saveToDatabaseX() {
	defer wg.Done()

	for r := range insertChannel {
		c := 0
		for {
			if err := addx(r); err != nil {
				if strings.Contains(err.Error(), "database is locked") && c < 5 {
					c++
					randutil.RandSleep(1000)
					continue
				}
				log.Log().Error(fmt.Sprintf("insert history record err, %s", err.Error()))
			}
			break
		}
	}
}

func NewSqliteDB() error {
	// 初始化数据库连接（增加 busy_timeout，开启 WAL）
	// 备注：logoove/sqlite 驱动使用名为 sqlite3 的驱动注册
	dsn := "file:" + db2.DbName() + "?cache=shared&mode=rwc&_journal_mode=WAL&_busy_timeout=5000"
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return err
	}
	dbx = db

	// sqlite 通常建议较小的连接数；WAL 下单连接最稳妥
	dbx.SetMaxOpenConns(1)
	dbx.SetMaxIdleConns(1)

	_, err = dbx.Exec(db2.SqliteCreate)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		return fmt.Errorf("error creating table: %v", err)
	}

	return dbx.Ping()
}

func CloseX() {
	// 安全关闭任务通道并等待 worker 退出
	if insertChannel != nil {
		close(insertChannel)
		insertChannel = nil
	}

	wg.Wait()

	if dbx != nil {
		dbx.Close()
	}
}

func addx(r *db2.Record) error {
	if dbx == nil {
		return fmt.Errorf("sqlite not initialized")
	}

	insertSQL := "INSERT INTO history(id, sessionid, tool, target, command, outputfile, exitcode, stderr, duration, created) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"

	currentTime := time.Now()
	createdTime := currentTime.Format("2006-01-02 15:04:05")

	// 为单次写入设置整体超时，防止长期阻塞
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := dbx.ExecContext(ctx, insertSQL, db2.SnowFlake.NextID(), db2.SessionID, r.Tool, r.Target, r.Command, r.OutputFile, r.ExitCode, r.Stderr, r.Duration, createdTime)
	return err
}

// SelectX lists recorded invocations, newest first. tool filters on the
// tool column, keyword matches target or command, page is 1-based.
func SelectX(tool, keyword, page string) ([]db2.Record, error) {
	if dbx == nil {
		return nil, fmt.Errorf("sqlite not initialized")
	}

	pageSize, err := strconv.Atoi(db2.LIMIT)
	if err != nil {
		pageSize = 100
	}
	pageInt, err := strconv.Atoi(page)
	if err != nil {
		pageInt = 1
	}
	offset := (pageInt - 1) * pageSize

	var where []string
	var args []interface{}

	if t := strings.TrimSpace(tool); t != "" {
		where = append(where, "tool = ?")
		args = append(args, t)
	}
	if kw := strings.TrimSpace(keyword); kw != "" {
		where = append(where, "(target LIKE ? OR command LIKE ?)")
		args = append(args, "%"+kw+"%", "%"+kw+"%")
	}

	query := "SELECT * FROM " + db2.TableName
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id DESC LIMIT " + db2.LIMIT + " OFFSET " + strconv.Itoa(offset)

	// 查询设置超时，避免慢查阻塞
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var data []db2.Record
	if err := dbx.SelectContext(ctx, &data, query, args...); err != nil {
		return nil, err
	}

	return data, nil
}

func Count() int64 {
	var count int64
	query := "SELECT COUNT(*) FROM " + db2.TableName

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := dbx.GetContext(ctx, &count, query)
	if err != nil {
		return 0
	}
	return count
}
