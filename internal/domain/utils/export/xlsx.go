package export

import (
	"bytes"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/clubmate/backend/internal/domain/entity"
)

// MembersToXLSX renders a club's member roster as an xlsx workbook with one
// row per member.
func MembersToXLSX(clubName string, members []entity.Member) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheet := "Sheet1"
	_ = f.SetCellValue(sheet, "A1", clubName)
	_ = f.SetCellValue(sheet, "A2", "User")
	_ = f.SetCellValue(sheet, "B2", "Role")
	_ = f.SetCellValue(sheet, "C2", "Joined")
	_ = f.SetCellValue(sheet, "D2", "Invited by")

	for i, member := range members {
		row := strconv.Itoa(i + 3)
		_ = f.SetCellValue(sheet, "A"+row, member.UserID)
		_ = f.SetCellValue(sheet, "B"+row, string(member.Role))
		_ = f.SetCellValue(sheet, "C"+row, member.JoinedAt.Format("2006-01-02"))
		if member.InvitedBy != nil {
			_ = f.SetCellValue(sheet, "D"+row, *member.InvitedBy)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
