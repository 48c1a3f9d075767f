package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"inventaris_backend/internals/configs"
	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	aplikasiVendorModel "inventaris_backend/internals/features/aplikasi_vendor/model"
	bahasaModel "inventaris_backend/internals/features/bahasa_pemrograman/model"
	frameworkModel "inventaris_backend/internals/features/framework/model"
	pdModel "inventaris_backend/internals/features/perangkat_daerah/model"
	picModel "inventaris_backend/internals/features/pic/model"
	vendorModel "inventaris_backend/internals/features/vendors/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=inventaris&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk semua tabel inventaris.
// Urutan penting: tabel yang direferensikan dibuat lebih dulu.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&pdModel.PerangkatDaerahModel{},
		&bahasaModel.BahasaPemrogramanModel{},
		&frameworkModel.FrameworkModel{},
		&aplikasiModel.AplikasiModel{},
		&picModel.PicModel{},
		&vendorModel.VendorModel{},
		&aplikasiVendorModel.AplikasiVendorModel{},
	)
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool siap dipakai
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
