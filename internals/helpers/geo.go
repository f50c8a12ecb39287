package helper

import "math"

// EarthRadiusKm sesuai pipeline ranking di query layer.
const EarthRadiusKm = 6371

// Haversine menghitung jarak great-circle (km) antara dua koordinat derajat.
// Bentuknya sama dengan ekspresi acos di query SQL nearby, termasuk clamp
// domain supaya acos tidak NaN karena pembulatan floating point.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	cosine := math.Sin(rLat1)*math.Sin(rLat2) + math.Cos(rLat1)*math.Cos(rLat2)*math.Cos(dLng)
	if cosine > 1 {
		cosine = 1
	} else if cosine < -1 {
		cosine = -1
	}
	return EarthRadiusKm * math.Acos(cosine)
}

// Round2 pembulatan 2 desimal, sama dengan ROUND(..., 2) di query layer.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
