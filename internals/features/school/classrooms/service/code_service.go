package service

import (
	"crypto/rand"
	"math/big"

	"gorm.io/gorm"

	model "schoolku_backend/internals/features/school/classrooms/model"
)

// Alfabet kode gabung: huruf besar + angka, gampang diketik manual.
const joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateJoinCode membuat kode acak 6 karakter dari crypto/rand.
func GenerateJoinCode() (string, error) {
	buf := make([]byte, model.JoinCodeLength)
	max := big.NewInt(int64(len(joinCodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = joinCodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// generateUniqueJoinCode re-roll sampai kode belum terpakai.
// Unique index pada classroom_code tetap jadi penjaga terakhir saat insert
// balapan; pemanggil harus retry kalau insert kena 23505.
func generateUniqueJoinCode(db *gorm.DB) (string, error) {
	for {
		code, err := GenerateJoinCode()
		if err != nil {
			return "", err
		}
		var n int64
		if err := db.Model(&model.ClassroomModel{}).
			Where("classroom_code = ?", code).
			Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return code, nil
		}
	}
}
