package postgres

import "gorm.io/gorm"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Status    string `gorm:"type:varchar(20);not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
	DeletedAt *int64 `gorm:"index"` // Soft delete

	TaxProfiles []TaxProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserModel) TableName() string {
	return "users"
}

// TaxProfileModel é o model GORM para perfis fiscais
type TaxProfileModel struct {
	ID          string  `gorm:"type:uuid;primaryKey"`
	UserID      string  `gorm:"type:uuid;not null;index"`
	CompanyName string  `gorm:"type:varchar(255);not null"`
	VATNumber   string  `gorm:"column:vat_number;type:varchar(50);uniqueIndex;not null"`
	TaxCode     *string `gorm:"type:varchar(50)"`
	Address     string  `gorm:"type:varchar(500);not null"`
	City        string  `gorm:"type:varchar(100);not null"`
	PostalCode  string  `gorm:"type:varchar(20);not null"`
	Country     string  `gorm:"type:char(2);not null"`
	Phone       *string `gorm:"type:varchar(30)"`
	Email       *string `gorm:"type:varchar(255)"`
	CreatedAt   int64   `gorm:"autoCreateTime;index"`
	UpdatedAt   int64   `gorm:"autoUpdateTime"`
	DeletedAt   *int64  `gorm:"index"` // Soft delete

	Invoices []InvoiceModel `gorm:"foreignKey:TaxProfileID;constraint:OnDelete:CASCADE"`
}

func (TaxProfileModel) TableName() string {
	return "tax_profiles"
}

// InvoiceModel é o model GORM para faturas.
// invoice_number é único dentro do escopo do perfil fiscal (índice composto).
type InvoiceModel struct {
	ID            string  `gorm:"type:uuid;primaryKey"`
	TaxProfileID  string  `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_profile_number"`
	InvoiceNumber string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoices_profile_number"`
	IssueDate     int64   `gorm:"not null;index"`
	DueDate       int64   `gorm:"not null"`
	Amount        float64 `gorm:"not null"`
	Currency      string  `gorm:"type:char(3);not null;default:EUR"`
	Status        string  `gorm:"type:varchar(20);not null;default:DRAFT;index"`
	Description   *string `gorm:"type:text"`
	Notes         *string `gorm:"type:text"`
	CreatedAt     int64   `gorm:"autoCreateTime"`
	UpdatedAt     int64   `gorm:"autoUpdateTime"`
	DeletedAt     *int64  `gorm:"index"` // Soft delete

	TaxProfile *TaxProfileModel `gorm:"foreignKey:TaxProfileID"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}

// Migrate cria/atualiza o schema das três tabelas
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{}, &TaxProfileModel{}, &InvoiceModel{})
}
