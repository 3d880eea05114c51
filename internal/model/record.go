// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Complaint is a single consumer complaint narrative as it appears in the
// source file, before any product information is attached.
type Complaint struct {
	ProductID string
	Narrative string
}

// Product maps a product identifier to its category pair.
type Product struct {
	ID        string
	Primary   string // main product category
	Secondary string // sub-product category, may be empty
}

// Record is a complaint joined with its product categories. This is the unit
// every pipeline stage after assembly operates on. Text starts as the raw
// narrative and is overwritten in place by the normalization stage.
type Record struct {
	Text      string
	ProductID string
	Primary   string
	Secondary string
}

// Tag returns the record's category pair as a label target.
func (r Record) Tag() Tag {
	return Tag{Primary: r.Primary, Secondary: r.Secondary}
}

// Hash identifies an exact-duplicate row for de-duplication at assembly time.
func (r Record) Hash() string {
	data := strings.Join([]string{r.Text, r.ProductID, r.Primary, r.Secondary}, "\x1f")
	sum := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", sum)
}

// Split holds the three dataset partitions produced by the 70/15/15 split.
type Split struct {
	Train      []Record
	Validation []Record
	Test       []Record
}

// Size returns the total number of records across all partitions.
func (s Split) Size() int {
	return len(s.Train) + len(s.Validation) + len(s.Test)
}
