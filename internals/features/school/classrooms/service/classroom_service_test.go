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
	model "schoolku_backend/internals/features/school/classrooms/model"
	schoolModel "schoolku_backend/internals/features/school/schools/model"
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
		&schoolModel.SchoolModel{},
		&model.ClassroomModel{},
		&model.ClassroomTeacherModel{},
		&model.ClassroomStudentModel{},
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

func seedSchool(t *testing.T, db *gorm.DB, principalID uuid.UUID) *schoolModel.SchoolModel {
	t.Helper()
	s := &schoolModel.SchoolModel{
		SchoolID:          uuid.New(),
		SchoolName:        "SD Test",
		SchoolPrincipalID: principalID,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func TestGenerateJoinCode(t *testing.T) {
	code, err := GenerateJoinCode()
	require.NoError(t, err)
	assert.Len(t, code, model.JoinCodeLength)
	for _, ch := range code {
		assert.Contains(t, joinCodeAlphabet, string(ch))
	}
}

func TestCreateClassroom(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)

	room, err := CreateClassroom(db, teacher, "Matematika 7A", nil)
	require.NoError(t, err)
	assert.Equal(t, school.SchoolID, room.ClassroomSchoolID)
	assert.Len(t, room.ClassroomCode, model.JoinCodeLength)

	// pembuat otomatis terpasang sebagai pengajar
	teaching, err := IsTeacherOf(db, room.ClassroomID, teacher.UserID)
	require.NoError(t, err)
	assert.True(t, teaching)
}

// Insert kode duplikat gagal dengan 23505 tapi tidak boleh menggugurkan
// transaksi pembungkusnya; re-roll berikutnya harus masih bisa jalan.
func TestInsertClassroomConflictKeepsTransactionAlive(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)

	room, err := CreateClassroom(db, teacher, "Kelas Kode", nil)
	require.NoError(t, err)

	var survivor uuid.UUID
	err = db.Transaction(func(tx *gorm.DB) error {
		dup := model.ClassroomModel{
			ClassroomID:       uuid.New(),
			ClassroomSchoolID: school.SchoolID,
			ClassroomName:     "Duplikat Kode",
			ClassroomCode:     room.ClassroomCode,
		}
		insErr := insertClassroom(tx, &dup)
		require.Error(t, insErr)
		require.True(t, helper.IsUniqueViolation(insErr))

		// transaksi luar masih hidup setelah percobaan gagal
		fresh := model.ClassroomModel{
			ClassroomID:       uuid.New(),
			ClassroomSchoolID: school.SchoolID,
			ClassroomName:     "Kode Baru",
			ClassroomCode:     "ZZZZ99",
		}
		if err := insertClassroom(tx, &fresh); err != nil {
			return err
		}
		survivor = fresh.ClassroomID
		return nil
	})
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&model.ClassroomModel{}).
		Where("classroom_id = ?", survivor).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCreateClassroomRequiresSchool(t *testing.T) {
	db := newTestDB(t)
	teacher := seedUser(t, db, constants.RoleTeacher, nil)

	_, err := CreateClassroom(db, teacher, "Tanpa Sekolah", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

func TestCreateClassroomRejectsStudent(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	student := seedUser(t, db, constants.RoleStudent, &school.SchoolID)

	_, err := CreateClassroom(db, student, "Kelas Ilegal", nil)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestJoinByCode(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	student := seedUser(t, db, constants.RoleStudent, &school.SchoolID)

	room, err := CreateClassroom(db, teacher, "IPA 8B", nil)
	require.NoError(t, err)

	joined, err := JoinByCode(db, student, room.ClassroomCode)
	require.NoError(t, err)
	assert.Equal(t, room.ClassroomID, joined.ClassroomID)

	enrolled, err := IsStudentOf(db, room.ClassroomID, student.UserID)
	require.NoError(t, err)
	assert.True(t, enrolled)
}

func TestJoinByCodeLowercaseIsNormalized(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	student := seedUser(t, db, constants.RoleStudent, &school.SchoolID)

	room, err := CreateClassroom(db, teacher, "IPS 9C", nil)
	require.NoError(t, err)

	_, err = JoinByCode(db, student, "  "+lowercase(room.ClassroomCode)+" ")
	require.NoError(t, err)
}

func lowercase(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = r + ('a' - 'A')
		}
	}
	return string(out)
}

func TestJoinByCodeRejectsNonStudent(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)

	_, err := JoinByCode(db, teacher, "ABC123")
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestJoinByCodeWrongLength(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	student := seedUser(t, db, constants.RoleStudent, &school.SchoolID)

	_, err := JoinByCode(db, student, "ABCD")
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

func TestJoinByCodeUnknownCode(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	student := seedUser(t, db, constants.RoleStudent, &school.SchoolID)

	_, err := JoinByCode(db, student, "ZZZZZZ")
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

func TestJoinByCodeCrossSchool(t *testing.T) {
	db := newTestDB(t)
	schoolA := seedSchool(t, db, uuid.New())
	schoolB := seedSchool(t, db, uuid.New())
	teacher := seedUser(t, db, constants.RoleTeacher, &schoolA.SchoolID)
	outsider := seedUser(t, db, constants.RoleStudent, &schoolB.SchoolID)

	room, err := CreateClassroom(db, teacher, "Kelas A", nil)
	require.NoError(t, err)

	_, err = JoinByCode(db, outsider, room.ClassroomCode)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestJoinByCodeTwice(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	student := seedUser(t, db, constants.RoleStudent, &school.SchoolID)

	room, err := CreateClassroom(db, teacher, "Kelas B", nil)
	require.NoError(t, err)

	_, err = JoinByCode(db, student, room.ClassroomCode)
	require.NoError(t, err)
	_, err = JoinByCode(db, student, room.ClassroomCode)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestEnrollStudentByEmail(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	student := seedUser(t, db, constants.RoleStudent, &school.SchoolID)

	room, err := CreateClassroom(db, teacher, "Kelas C", nil)
	require.NoError(t, err)

	enrolled, err := EnrollStudentByEmail(db, teacher, room.ClassroomID, student.UserEmail)
	require.NoError(t, err)
	assert.Equal(t, student.UserID, enrolled.UserID)

	// enroll ulang → 409
	_, err = EnrollStudentByEmail(db, teacher, room.ClassroomID, student.UserEmail)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestEnrollStudentOutsideSchool(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	other := seedSchool(t, db, uuid.New())
	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	outsider := seedUser(t, db, constants.RoleStudent, &other.SchoolID)

	room, err := CreateClassroom(db, teacher, "Kelas D", nil)
	require.NoError(t, err)

	_, err = EnrollStudentByEmail(db, teacher, room.ClassroomID, outsider.UserEmail)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

func TestEnrollStudentRequiresManageRights(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	other := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	student := seedUser(t, db, constants.RoleStudent, &school.SchoolID)

	room, err := CreateClassroom(db, teacher, "Kelas E", nil)
	require.NoError(t, err)

	// guru lain yang tidak terpasang di kelas tidak boleh mengelola roster
	_, err = EnrollStudentByEmail(db, other, room.ClassroomID, student.UserEmail)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestRemoveStudent(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	student := seedUser(t, db, constants.RoleStudent, &school.SchoolID)

	room, err := CreateClassroom(db, teacher, "Kelas F", nil)
	require.NoError(t, err)
	_, err = EnrollStudentByEmail(db, teacher, room.ClassroomID, student.UserEmail)
	require.NoError(t, err)

	require.NoError(t, RemoveStudent(db, teacher, room.ClassroomID, student.UserID))

	enrolled, err := IsStudentOf(db, room.ClassroomID, student.UserID)
	require.NoError(t, err)
	assert.False(t, enrolled)
}

func TestAddCoTeacherAdoptsSchool(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)
	school := seedSchool(t, db, principal.UserID)
	principal.UserSchoolID = &school.SchoolID
	require.NoError(t, db.Model(&userModel.UserModel{}).
		Where("user_id = ?", principal.UserID).
		Update("user_school_id", school.SchoolID).Error)

	room, err := CreateClassroom(db, principal, "Kelas G", nil)
	require.NoError(t, err)

	freeAgent := seedUser(t, db, constants.RoleTeacher, nil)

	added, err := AddCoTeacher(db, principal, room.ClassroomID, freeAgent.UserEmail)
	require.NoError(t, err)
	require.NotNil(t, added.UserSchoolID)
	assert.Equal(t, school.SchoolID, *added.UserSchoolID)

	teaching, err := IsTeacherOf(db, room.ClassroomID, freeAgent.UserID)
	require.NoError(t, err)
	assert.True(t, teaching)
}

func TestAddCoTeacherCrossSchool(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)
	school := seedSchool(t, db, principal.UserID)
	principal.UserSchoolID = &school.SchoolID

	other := seedSchool(t, db, uuid.New())
	outsider := seedUser(t, db, constants.RoleTeacher, &other.SchoolID)

	room, err := CreateClassroom(db, principal, "Kelas H", nil)
	require.NoError(t, err)

	_, err = AddCoTeacher(db, principal, room.ClassroomID, outsider.UserEmail)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberCode(t, err))
}

func TestAddCoTeacherRejectsPlainTeacher(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	colleague := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)

	room, err := CreateClassroom(db, teacher, "Kelas I", nil)
	require.NoError(t, err)

	_, err = AddCoTeacher(db, teacher, room.ClassroomID, colleague.UserEmail)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestAddCoTeacherDuplicate(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)
	school := seedSchool(t, db, principal.UserID)
	principal.UserSchoolID = &school.SchoolID

	room, err := CreateClassroom(db, principal, "Kelas J", nil)
	require.NoError(t, err)

	colleague := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	_, err = AddCoTeacher(db, principal, room.ClassroomID, colleague.UserEmail)
	require.NoError(t, err)

	_, err = AddCoTeacher(db, principal, room.ClassroomID, colleague.UserEmail)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestCanManageClassroom(t *testing.T) {
	db := newTestDB(t)
	principal := seedUser(t, db, constants.RolePrincipal, nil)
	school := seedSchool(t, db, principal.UserID)
	principal.UserSchoolID = &school.SchoolID
	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	manager := seedUser(t, db, constants.RoleSchoolManager, &school.SchoolID)
	student := seedUser(t, db, constants.RoleStudent, &school.SchoolID)

	room, err := CreateClassroom(db, teacher, "Kelas K", nil)
	require.NoError(t, err)

	cases := []struct {
		name  string
		actor *userModel.UserModel
		want  bool
	}{
		{"attached teacher", teacher, true},
		{"principal of school", principal, true},
		{"school manager", manager, true},
		{"student", student, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := CanManageClassroom(db, tc.actor, room)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestClassroomsFor(t *testing.T) {
	db := newTestDB(t)
	school := seedSchool(t, db, uuid.New())
	teacher := seedUser(t, db, constants.RoleTeacher, &school.SchoolID)
	student := seedUser(t, db, constants.RoleStudent, &school.SchoolID)

	roomB, err := CreateClassroom(db, teacher, "B Kelas", nil)
	require.NoError(t, err)
	roomA, err := CreateClassroom(db, teacher, "A Kelas", nil)
	require.NoError(t, err)
	_, err = JoinByCode(db, student, roomA.ClassroomCode)
	require.NoError(t, err)

	teaching, err := ClassroomsFor(db, teacher)
	require.NoError(t, err)
	require.Len(t, teaching, 2)
	// urut nama
	assert.Equal(t, roomA.ClassroomID, teaching[0].ClassroomID)
	assert.Equal(t, roomB.ClassroomID, teaching[1].ClassroomID)

	enrolled, err := ClassroomsFor(db, student)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, roomA.ClassroomID, enrolled[0].ClassroomID)
}
