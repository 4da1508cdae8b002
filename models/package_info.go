package models

import "time"

// PackageInfo is a labeled fact row (icon + label + value) shown on a
// package detail page. OrderIndex is assigned max(existing)+1 on creation.
type PackageInfo struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PackageID  uint      `gorm:"index;not null" json:"package_id"`
	Icon       string    `gorm:"size:100;not null" json:"icon"`
	Label      string    `gorm:"size:255;not null" json:"label"`
	Value      string    `gorm:"size:255;not null" json:"value"`
	OrderIndex int       `gorm:"default:0" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (PackageInfo) TableName() string { return "package_info" }

// PackageFeature is a single bullet-point string. When at least one row
// exists for a package it supersedes the legacy features JSON column.
type PackageFeature struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PackageID  uint      `gorm:"index;not null" json:"package_id"`
	Text       string    `gorm:"size:255;not null" json:"text"`
	OrderIndex int       `gorm:"default:0" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (PackageFeature) TableName() string { return "package_features" }
