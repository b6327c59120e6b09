package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	_ "github.com/mattn/go-sqlite3"
	"post_bot/shared"
	"sync"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks post_bot/dal IRepo

type IRepo interface {
	InitUpdateDb()
	GetSession(userId string) (*Session, error)
	UpsertSession(sess *Session) error
	DeleteSession(userId string) error
	AddPublishRecord(rec *PublishRecord) error
	GetPublishHistory(userId string, limit int) ([]*PublishRecord, error)
	CountPublished(userId string, contentHash int64) (int, error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

func (repo *Repo) GetSession(userId string) (*Session, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(
		`SELECT user_id, user_urn, auth_verified, connected_at, verified_at FROM sessions WHERE user_id=?`, userId)
	var res Session
	var connectedAt, verifiedAt sql.NullTime
	err := row.Scan(&res.UserId, &res.UserUrn, &res.AuthVerified, &connectedAt, &verifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if connectedAt.Valid {
		res.ConnectedAt = &connectedAt.Time
	}
	if verifiedAt.Valid {
		res.VerifiedAt = &verifiedAt.Time
	}
	return &res, nil
}

func (repo *Repo) UpsertSession(sess *Session) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO sessions (user_id, user_urn, auth_verified, connected_at, verified_at)
		VALUES(?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET user_urn=excluded.user_urn, auth_verified=excluded.auth_verified,
			connected_at=excluded.connected_at, verified_at=excluded.verified_at`,
		sess.UserId, sess.UserUrn, sess.AuthVerified, sess.ConnectedAt, sess.VerifiedAt)
	return err
}

func (repo *Repo) DeleteSession(userId string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM sessions WHERE user_id=?`, userId)
	return err
}

func (repo *Repo) AddPublishRecord(rec *PublishRecord) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO publish_log
		(user_id, post_id, content_hash, content_preview, image_url, test_mode, success, error, published_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.UserId, rec.PostId, rec.ContentHash, rec.ContentPreview, rec.ImageUrl,
		rec.TestMode, rec.Success, rec.Error, rec.PublishedAt)
	return err
}

func (repo *Repo) GetPublishHistory(userId string, limit int) ([]*PublishRecord, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT user_id, post_id, content_hash, content_preview, image_url,
			test_mode, success, error, published_at
		FROM publish_log WHERE user_id=? ORDER BY published_at DESC, id DESC LIMIT ?`, userId, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*PublishRecord, 0)
	for rows.Next() {
		rec := PublishRecord{}
		var imageUrl sql.NullString
		err = rows.Scan(&rec.UserId, &rec.PostId, &rec.ContentHash, &rec.ContentPreview, &imageUrl,
			&rec.TestMode, &rec.Success, &rec.Error, &rec.PublishedAt)
		if err != nil {
			return nil, err
		}
		if imageUrl.Valid {
			rec.ImageUrl = &imageUrl.String
		}
		res = append(res, &rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// CountPublished returns how many times content with this hash went out for real.
func (repo *Repo) CountPublished(userId string, contentHash int64) (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM publish_log
		WHERE user_id=? AND content_hash=? AND success=1 AND test_mode=0`, userId, contentHash)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
