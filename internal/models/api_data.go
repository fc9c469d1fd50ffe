package models

import "time"

// ApiParam describes a request parameter or header.
type ApiParam struct {
	Name        string `json:"name"`
	Required    bool   `json:"required"`
	Example     string `json:"example,omitempty"`
	Description string `json:"description,omitempty"`
}

type ApiData struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UUID           string     `gorm:"size:36;uniqueIndex;not null" json:"uuid"`
	ProjectID      uint       `gorm:"index;not null" json:"projectID"`
	GroupName      string     `gorm:"size:255" json:"groupName"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	URI            string     `gorm:"size:1024;not null" json:"uri"`
	Method         string     `gorm:"size:16;not null;default:GET" json:"method"`
	Protocol       string     `gorm:"size:16;not null;default:http" json:"protocol"`
	RequestHeaders []ApiParam `gorm:"serializer:json" json:"requestHeaders"`
	QueryParams    []ApiParam `gorm:"serializer:json" json:"queryParams"`
	RestParams     []ApiParam `gorm:"serializer:json" json:"restParams"`
	MockStatus     int        `gorm:"not null;default:200" json:"mockStatus"`
	MockResponse   string     `gorm:"type:text" json:"mockResponse"` // raw JSON served by the mock server
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
