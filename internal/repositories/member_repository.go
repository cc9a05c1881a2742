package repositories

import (
	"errors"

	"watchparty_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMemberNotFound = errors.New("member not found")

type MemberRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Member, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Member, error)
	FindAll(db *gorm.DB) ([]models.Member, error)
	Create(db *gorm.DB, member *models.Member) error
	Update(db *gorm.DB, member *models.Member) error
}

type MemberRepositoryImpl struct{}

func NewMemberRepository() MemberRepository {
	return &MemberRepositoryImpl{}
}

func (r *MemberRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Member, error) {
	var member models.Member
	err := db.Preload("User").First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Member, error) {
	var member models.Member
	err := db.Preload("User").First(&member, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) FindAll(db *gorm.DB) ([]models.Member, error) {
	var members []models.Member
	err := db.Preload("User").Order("created_at").Find(&members).Error
	return members, err
}

func (r *MemberRepositoryImpl) Create(db *gorm.DB, member *models.Member) error {
	return db.Create(member).Error
}

func (r *MemberRepositoryImpl) Update(db *gorm.DB, member *models.Member) error {
	return db.Save(member).Error
}
