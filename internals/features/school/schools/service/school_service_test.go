package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/constants"
	model "schoolku_backend/internals/features/school/schools/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&model.SchoolModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role constants.Role, schoolID *uuid.UUID) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{
		UserID:       uuid.New(),
		UserName:     "User " + uuid.NewString()[:8],
		UserEmail:    uuid.NewString()[:8] + "@test.local",
		UserPassword: "x",
		UserRole:     role,
		UserSchoolID: schoolID,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func TestUpsertSchoolForPrincipal(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)

	school, err := UpsertSchoolForPrincipal(db, principal, "SD Pertama")
	require.NoError(t, err)
	assert.Equal(t, principal.UserID, school.SchoolPrincipalID)

	// principal ikut tergabung ke sekolahnya
	var reloaded userModel.UserModel
	require.NoError(t, db.Where("user_id = ?", principal.UserID).First(&reloaded).Error)
	require.NotNil(t, reloaded.UserSchoolID)
	assert.Equal(t, school.SchoolID, *reloaded.UserSchoolID)

	// idempotent: panggilan kedua memperbarui nama, bukan bikin baris baru
	again, err := UpsertSchoolForPrincipal(db, principal, "SD Diganti")
	require.NoError(t, err)
	assert.Equal(t, school.SchoolID, again.SchoolID)
	assert.Equal(t, "SD Diganti", again.SchoolName)

	var n int64
	require.NoError(t, db.Model(&model.SchoolModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestUpsertSchoolRejectsNonPrincipal(t *testing.T) {
	db := newTestDB(t)
	teacher := seedUser(t, db, constants.RoleTeacher, nil)

	_, err := UpsertSchoolForPrincipal(db, teacher, "SD Ilegal")
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestRenameSchool(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)
	_, err := UpsertSchoolForPrincipal(db, principal, "Nama Lama")
	require.NoError(t, err)

	renamed, err := RenameSchool(db, principal, "Nama Baru")
	require.NoError(t, err)
	assert.Equal(t, "Nama Baru", renamed.SchoolName)
}

func TestRenameWithoutSchool(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)

	_, err := RenameSchool(db, principal, "Nama Baru")
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestDeleteSchoolDetachesMembers(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)
	school, err := UpsertSchoolForPrincipal(db, principal, "SD Bubar")
	require.NoError(t, err)

	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	student := seedUser(t, db, constants.RoleStudent, &school.SchoolID)

	require.NoError(t, DeleteSchool(db, principal))

	var n int64
	require.NoError(t, db.Model(&model.SchoolModel{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)

	for _, id := range []uuid.UUID{principal.UserID, teacher.UserID, student.UserID} {
		var u userModel.UserModel
		require.NoError(t, db.Where("user_id = ?", id).First(&u).Error)
		assert.Nil(t, u.UserSchoolID, "user %s masih tergabung", u.UserEmail)
	}
}

func TestAddTeacherByEmail(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)
	school, err := UpsertSchoolForPrincipal(db, principal, "SD Rekrut")
	require.NoError(t, err)
	principal.UserSchoolID = &school.SchoolID

	freeAgent := seedUser(t, db, constants.RoleTeacher, nil)

	added, err := AddTeacherByEmail(db, principal, freeAgent.UserEmail)
	require.NoError(t, err)
	require.NotNil(t, added.UserSchoolID)
	assert.Equal(t, school.SchoolID, *added.UserSchoolID)
}

func TestAddTeacherAntiPoaching(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)
	school, err := UpsertSchoolForPrincipal(db, principal, "SD Satu")
	require.NoError(t, err)
	principal.UserSchoolID = &school.SchoolID

	rival := seedUser(t, db, constants.RolePrincipal, nil)
	rivalSchool, err := UpsertSchoolForPrincipal(db, rival, "SD Dua")
	require.NoError(t, err)

	taken := seedUser(t, db, constants.RoleTeacher, &rivalSchool.SchoolID)

	// guru sekolah lain tidak bisa direkrut
	_, err = AddTeacherByEmail(db, principal, taken.UserEmail)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))

	// email yang ternyata siswa juga ditolak
	student := seedUser(t, db, constants.RoleStudent, nil)
	_, err = AddTeacherByEmail(db, principal, student.UserEmail)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

func TestAddStudentByManager(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)
	school, err := UpsertSchoolForPrincipal(db, principal, "SD Manager")
	require.NoError(t, err)

	manager := seedUser(t, db, constants.RoleSchoolManager, &school.SchoolID)
	freeAgent := seedUser(t, db, constants.RoleStudent, nil)

	added, err := AddStudentByEmail(db, manager, freeAgent.UserEmail)
	require.NoError(t, err)
	require.NotNil(t, added.UserSchoolID)
	assert.Equal(t, school.SchoolID, *added.UserSchoolID)
}

func TestToggleManager(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)
	school, err := UpsertSchoolForPrincipal(db, principal, "SD Toggle")
	require.NoError(t, err)

	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)

	promoted, err := ToggleManager(db, principal, teacher.UserID)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleSchoolManager, promoted.UserRole)

	demoted, err := ToggleManager(db, principal, teacher.UserID)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleTeacher, demoted.UserRole)
}

func TestToggleManagerGuards(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)
	school, err := UpsertSchoolForPrincipal(db, principal, "SD Guard")
	require.NoError(t, err)

	// diri sendiri
	_, err = ToggleManager(db, principal, principal.UserID)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	// siswa bukan target yang sah
	student := seedUser(t, db, constants.RoleStudent, &school.SchoolID)
	_, err = ToggleManager(db, principal, student.UserID)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))

	// anggota sekolah lain
	rival := seedUser(t, db, constants.RolePrincipal, nil)
	rivalSchool, err := UpsertSchoolForPrincipal(db, rival, "SD Lain")
	require.NoError(t, err)
	outsider := seedUser(t, db, constants.RoleTeacher, &rivalSchool.SchoolID)
	_, err = ToggleManager(db, principal, outsider.UserID)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	// user tidak dikenal
	_, err = ToggleManager(db, principal, uuid.New())
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestListMembers(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)
	school, err := UpsertSchoolForPrincipal(db, principal, "SD List")
	require.NoError(t, err)

	seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	seedUser(t, db, constants.RoleStudent, &school.SchoolID)
	seedUser(t, db, constants.RoleStudent, &school.SchoolID)

	members, total, err := ListMembers(db, school.SchoolID, helper.Paging{Page: 1, PerPage: 10, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total) // principal + guru + 2 siswa
	assert.Len(t, members, 4)

	// paging
	firstPage, total, err := ListMembers(db, school.SchoolID, helper.Paging{Page: 1, PerPage: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, firstPage, 2)
}
