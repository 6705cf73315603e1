package seeds

import (
	"gorm.io/gorm"

	"github.com/tripline/tripline/internal/infrastructure/persistence/models"
)

// DefaultPlaces is a small catalog for development databases. The catalog is
// otherwise maintained outside this service.
var DefaultPlaces = []models.PlaceModel{
	{Name: "Gyeongbokgung Palace", Address: "161 Sajik-ro, Jongno-gu, Seoul", Category: "landmark", Latitude: 37.5796, Longitude: 126.9770},
	{Name: "Bukchon Hanok Village", Address: "37 Gyedong-gil, Jongno-gu, Seoul", Category: "landmark", Latitude: 37.5826, Longitude: 126.9831},
	{Name: "Gwangjang Market", Address: "88 Changgyeonggung-ro, Jongno-gu, Seoul", Category: "food", Latitude: 37.5700, Longitude: 126.9996},
	{Name: "N Seoul Tower", Address: "105 Namsangongwon-gil, Yongsan-gu, Seoul", Category: "landmark", Latitude: 37.5512, Longitude: 126.9882},
	{Name: "Haeundae Beach", Address: "264 Haeundaehaebyeon-ro, Haeundae-gu, Busan", Category: "nature", Latitude: 35.1587, Longitude: 129.1604},
	{Name: "Jagalchi Market", Address: "52 Jagalchihaean-ro, Jung-gu, Busan", Category: "food", Latitude: 35.0966, Longitude: 129.0306},
	{Name: "Gamcheon Culture Village", Address: "203 Gamnae 2-ro, Saha-gu, Busan", Category: "culture", Latitude: 35.0975, Longitude: 129.0106},
	{Name: "Seongsan Ilchulbong", Address: "Seongsan-eup, Seogwipo-si, Jeju", Category: "nature", Latitude: 33.4581, Longitude: 126.9425},
}

// SeedPlaces inserts DefaultPlaces, matching existing rows by name so that
// repeated runs add nothing. It returns the number of places created.
func SeedPlaces(db *gorm.DB) (int, error) {
	created := 0
	for _, p := range DefaultPlaces {
		place := p
		result := db.Where(models.PlaceModel{Name: place.Name}).FirstOrCreate(&place)
		if result.Error != nil {
			return created, result.Error
		}
		created += int(result.RowsAffected)
	}
	return created, nil
}
