package configsdatabase

import (
	"errors"
	"strings"
	"time"

	"kartoyunu.app/configs"
	"kartoyunu.app/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Dialector DATABASE_URL'den uygun GORM dialector'ünü seçer.
// postgres:// ve postgresql:// adresleri PostgreSQL'e, sqlite:// adresleri
// (veya şemasız dosya yolları) SQLite'a gider.
func Dialector(databaseURL string) (gorm.Dialector, error) {
	url := strings.TrimSpace(databaseURL)
	switch {
	case url == "":
		return nil, errors.New("DATABASE_URL boş olamaz")
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url), nil
	case strings.HasPrefix(url, "sqlite://"):
		return sqlite.Open(sqliteDSN(strings.TrimPrefix(url, "sqlite://"))), nil
	default:
		return sqlite.Open(sqliteDSN(url)), nil
	}
}

// sqliteDSN foreign key desteğini her havuz bağlantısında açar;
// SQLite'ta bu ayar bağlantı bazındadır ve varsayılan olarak kapalıdır.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// Connect yapılandırmadaki DATABASE_URL ile veritabanı bağlantısını açar.
// Bağlantı main'de bir kez kurulur ve repository/servis katmanlarına
// referans olarak geçirilir; bu pakette global bağlantı tutulmaz.
func Connect(cfg *configs.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Warn
	if cfg.Debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Dialect'e özgü unique/foreign key ihlallerini gorm.ErrDuplicatedKey
		// ve gorm.ErrForeignKeyViolated olarak çevirir; servis katmanı buna güvenir.
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		configslog.Log.Error("Veritabanı bağlantısı açılamadı", zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu (%s)", dialector.Name())
	return db, nil
}

// Close altta yatan sql.DB havuzunu kapatır.
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı bağlantısı alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}
