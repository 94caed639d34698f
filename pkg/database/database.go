package database

import (
	"course_backend/internal/config"
	"course_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	// clientFoundRows: UPDATE 的影响行数按匹配行计算，软删除与部分更新依赖它判断记录是否存在
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local&clientFoundRows=true",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate 建表；表结构由模型定义，业务读写全部走原生参数化 SQL
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Teacher{},
		&model.User{},
		&model.Course{},
		&model.CourseURL{},
		&model.CourseEnrollment{},
		&model.Assignment{},
		&model.AssignmentQuestion{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.AssignmentSubmission{},
		&model.QuizSubmission{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")
	return nil
}
