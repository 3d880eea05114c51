package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgrange/tagwise/internal/common"
	"github.com/kgrange/tagwise/internal/model"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadComplaints(t *testing.T) {
	path := writeCSV(t, "complaints.csv",
		"complaint_id,product_id,complaint_what_happened\n"+
			"1,P1,\"XXXX charged me a fee, twice\"\n"+
			"2,P2,No refund issued\n")

	complaints, err := ReadComplaints(path)
	require.NoError(t, err)

	assert.Equal(t, []model.Complaint{
		{ProductID: "P1", Narrative: "XXXX charged me a fee, twice"},
		{ProductID: "P2", Narrative: "No refund issued"},
	}, complaints)
}

func TestReadComplaints_AlternateHeader(t *testing.T) {
	path := writeCSV(t, "complaints.csv",
		"Narrative,Product_ID\nbad fee,P9\n")

	complaints, err := ReadComplaints(path)
	require.NoError(t, err)
	require.Len(t, complaints, 1)
	assert.Equal(t, "P9", complaints[0].ProductID)
	assert.Equal(t, "bad fee", complaints[0].Narrative)
}

func TestReadComplaints_MissingColumn(t *testing.T) {
	path := writeCSV(t, "complaints.csv", "product_id,other\nP1,x\n")

	_, err := ReadComplaints(path)
	assert.ErrorIs(t, err, common.ErrMissingColumn)
}

func TestReadProducts(t *testing.T) {
	path := writeCSV(t, "products.csv",
		"product_id,product,sub_product\n"+
			"P1,Credit card,Late fee\n"+
			"P2,Checking account,\n")

	products, err := ReadProducts(path)
	require.NoError(t, err)

	assert.Equal(t, []model.Product{
		{ID: "P1", Primary: "Credit card", Secondary: "Late fee"},
		{ID: "P2", Primary: "Checking account", Secondary: ""},
	}, products)
}

func TestReadProducts_EmptyFile(t *testing.T) {
	path := writeCSV(t, "products.csv", "")

	_, err := ReadProducts(path)
	assert.ErrorIs(t, err, common.ErrEmptyDataset)
}

func TestAssemble(t *testing.T) {
	complaints := []model.Complaint{
		{ProductID: "P1", Narrative: "late fee"},
		{ProductID: "P1", Narrative: "late fee"}, // exact duplicate
		{ProductID: "P2", Narrative: "no statement"},
		{ProductID: "P404", Narrative: "orphan complaint"},
	}
	products := []model.Product{
		{ID: "P1", Primary: "Credit card", Secondary: "Late fee"},
		{ID: "P2", Primary: "Checking account", Secondary: ""},
	}

	records := Assemble(complaints, products)

	assert.Equal(t, []model.Record{
		{Text: "late fee", ProductID: "P1", Primary: "Credit card", Secondary: "Late fee"},
		{Text: "no statement", ProductID: "P2", Primary: "Checking account", Secondary: ""},
		{Text: "orphan complaint", ProductID: "P404", Primary: "", Secondary: ""},
	}, records)
}

func TestAssemble_NearDuplicatesSurvive(t *testing.T) {
	complaints := []model.Complaint{
		{ProductID: "P1", Narrative: "late fee"},
		{ProductID: "P2", Narrative: "late fee"}, // same text, different product
	}
	products := []model.Product{
		{ID: "P1", Primary: "Credit card"},
		{ID: "P2", Primary: "Checking account"},
	}

	records := Assemble(complaints, products)
	assert.Len(t, records, 2)
}
