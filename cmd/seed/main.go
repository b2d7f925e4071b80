package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/carehome-dev/care-journal/backend/internal/config"
	"github.com/carehome-dev/care-journal/backend/internal/repository"
	"github.com/carehome-dev/care-journal/backend/internal/roster"
	"github.com/carehome-dev/care-journal/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机员工, 2: 插入随机排班空档, 3: 插入演示日志)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)
	if err := repo.EnsureSchema(); err != nil {
		logger.Error("无法初始化数据表", "error", err)
		return
	}

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的员工数量")
			return
		}

		users, err := repo.GetUsers()
		if err != nil {
			slog.Error("无法读取账号集合", slog.String("error", err.Error()))
			return
		}

		for i := 0; i < n; i++ {
			users = append(users, *utils.GenerateRandomUser())
		}

		if err := repo.SaveUsers(users); err != nil {
			slog.Error("无法保存账号集合", slog.String("error", err.Error()))
			return
		}

		slog.Info("插入员工成功", slog.Int("count", n))
	case 2:
		if n <= 0 || n > 12 {
			slog.Error("请输入合法的月份数 (1-12)")
			return
		}

		schedule, err := repo.GetSchedule()
		if err != nil {
			slog.Error("无法读取排班集合", slog.String("error", err.Error()))
			return
		}

		weekday := time.Weekday(rand.Intn(7))
		batch := roster.Generate(time.Now(), weekday, n, utils.GenerateRandomSlots())
		schedule = append(schedule, batch...)

		if err := repo.SaveSchedule(schedule); err != nil {
			slog.Error("无法保存排班集合", slog.String("error", err.Error()))
			return
		}

		slog.Info("插入排班空档成功", slog.Int("count", len(batch)), slog.Int("weekday", int(weekday)))
	case 3:
		if n <= 0 {
			slog.Error("请输入合法的日志数量")
			return
		}

		users, err := repo.GetUsers()
		if err != nil {
			slog.Error("无法读取账号集合", slog.String("error", err.Error()))
			return
		}
		categories, err := repo.GetCategories()
		if err != nil {
			slog.Error("无法读取日志分类集合", slog.String("error", err.Error()))
			return
		}
		entries, err := repo.GetJournalEntries()
		if err != nil {
			slog.Error("无法读取日志集合", slog.String("error", err.Error()))
			return
		}

		now := time.Now()
		for i := 0; i < n; i++ {
			author := users[rand.Intn(len(users))]
			entries = append(entries, *utils.GenerateRandomJournalEntry(&author, categories, now))
		}

		if err := repo.SaveJournalEntries(entries); err != nil {
			slog.Error("无法保存日志集合", slog.String("error", err.Error()))
			return
		}

		slog.Info("插入演示日志成功", slog.Int("count", n))
	default:
		slog.Error("指定的操作非法")
	}
}
