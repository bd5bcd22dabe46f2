// C:\Users\kouji\デスクトップ\KRS\database\project_details_test.go
package database

import (
	"testing"

	"krs/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
CREATE TABLE projects (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    project_no      TEXT NOT NULL UNIQUE,
    customer_code   TEXT NOT NULL DEFAULT '',
    machine_id      INTEGER,
    title           TEXT NOT NULL DEFAULT '',
    status          TEXT NOT NULL DEFAULT 'open',
    completion_date TEXT,
    created_at      TEXT NOT NULL,
    note            TEXT NOT NULL DEFAULT ''
);
CREATE TABLE project_details (
    id                      INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id              INTEGER NOT NULL,
    line_no                 INTEGER NOT NULL,
    line_type               TEXT NOT NULL,
    description             TEXT NOT NULL DEFAULT '',
    quantity                REAL NOT NULL DEFAULT 0,
    unit_price              REAL NOT NULL DEFAULT 0,
    unit_cost               REAL NOT NULL DEFAULT 0,
    detail_date             TEXT NOT NULL DEFAULT '',
    travel_type             TEXT NOT NULL DEFAULT '',
    outsourcing_detail_type TEXT NOT NULL DEFAULT '',
    product_code            TEXT
);
`

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	return db
}

func seedProject(t *testing.T, db *sqlx.DB) int {
	t.Helper()
	tx, err := db.Beginx()
	require.NoError(t, err)

	id, err := InsertProjectInTx(tx, model.Project{
		ProjectNo: "P2405100001",
		Title:     "フォークリフト修理",
		Status:    "open",
		CreatedAt: "2024-05-10",
	})
	require.NoError(t, err)

	err = PersistProjectDetailsInTx(tx, []model.ProjectDetail{
		{ProjectID: id, LineNo: 1, LineType: model.LineTypeLabor, Description: "分解点検", Quantity: 2, UnitPrice: 9000},
		{ProjectID: id, LineNo: 2, LineType: model.LineTypePart, Description: "オイルフィルタ", Quantity: 1, UnitPrice: 1500},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	return id
}

func TestSaveDetails_ReplacesWholesale(t *testing.T) {
	db := newTestDB(t)
	id := seedProject(t, db)

	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, DeleteProjectDetailsInTx(tx, id))
	require.NoError(t, PersistProjectDetailsInTx(tx, []model.ProjectDetail{
		{ProjectID: id, LineNo: 1, LineType: model.LineTypeOther, Description: "引取運搬", Quantity: 1, UnitPrice: 5000},
	}))
	require.NoError(t, tx.Commit())

	details, err := GetProjectDetails(db, id)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "引取運搬", details[0].Description)
}

func TestSaveDetails_RollbackKeepsOriginalRows(t *testing.T) {
	db := newTestDB(t)
	id := seedProject(t, db)

	// 全削除→挿入の途中で失敗した想定。ロールバックで元の明細がそのまま残ること。
	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, DeleteProjectDetailsInTx(tx, id))
	require.NoError(t, PersistProjectDetailsInTx(tx, []model.ProjectDetail{
		{ProjectID: id, LineNo: 1, LineType: model.LineTypeOther, Description: "途中まで", Quantity: 1, UnitPrice: 100},
	}))
	require.NoError(t, tx.Rollback())

	details, err := GetProjectDetails(db, id)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "分解点検", details[0].Description)
	assert.Equal(t, "オイルフィルタ", details[1].Description)
}

func TestGetDetailsByProjectIDs(t *testing.T) {
	db := newTestDB(t)
	id := seedProject(t, db)

	byProject, err := GetDetailsByProjectIDs(db, []int{id, 9999})
	require.NoError(t, err)
	require.Len(t, byProject[id], 2)
	assert.Empty(t, byProject[9999])

	empty, err := GetDetailsByProjectIDs(db, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetProjectsForPeriod_FallsBackToCreatedAt(t *testing.T) {
	db := newTestDB(t)

	tx, err := db.Beginx()
	require.NoError(t, err)
	_, err = InsertProjectInTx(tx, model.Project{ProjectNo: "P2403150001", CreatedAt: "2024-03-15"})
	require.NoError(t, err)
	completed := "2024-04-02"
	_, err = InsertProjectInTx(tx, model.Project{ProjectNo: "P2403200001", CreatedAt: "2024-03-20", CompletionDate: &completed})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	march, err := GetProjectsForPeriod(db, "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	require.Len(t, march, 1)
	assert.Equal(t, "P2403150001", march[0].ProjectNo)

	april, err := GetProjectsForPeriod(db, "2024-04-01", "2024-04-30")
	require.NoError(t, err)
	require.Len(t, april, 1)
	assert.Equal(t, "P2403200001", april[0].ProjectNo)
}

func TestNextProjectNoInTx(t *testing.T) {
	db := newTestDB(t)

	tx, err := db.Beginx()
	require.NoError(t, err)
	no, err := NextProjectNoInTx(tx, "240510")
	require.NoError(t, err)
	assert.Equal(t, "P2405100001", no)

	_, err = InsertProjectInTx(tx, model.Project{ProjectNo: no, CreatedAt: "2024-05-10"})
	require.NoError(t, err)

	no2, err := NextProjectNoInTx(tx, "240510")
	require.NoError(t, err)
	assert.Equal(t, "P2405100002", no2)
	require.NoError(t, tx.Rollback())
}
