package postcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayAddress_RoadWithDistrictAndBuilding(t *testing.T) {
	r := Result{
		Address:      "서울특별시 중구 세종대로 110",
		AddressType:  TypeRoad,
		Bname:        "태평로1가",
		BuildingName: "서울특별시청",
	}
	assert.Equal(t, "서울특별시 중구 세종대로 110 (태평로1가, 서울특별시청)", r.DisplayAddress())
}

func TestDisplayAddress_RoadWithDistrictOnly(t *testing.T) {
	r := Result{
		Address:     "서울특별시 중구 세종대로 110",
		AddressType: TypeRoad,
		Bname:       "태평로1가",
	}
	assert.Equal(t, "서울특별시 중구 세종대로 110 (태평로1가)", r.DisplayAddress())
}

func TestDisplayAddress_RoadWithBuildingOnly(t *testing.T) {
	r := Result{
		Address:      "서울특별시 중구 세종대로 110",
		AddressType:  TypeRoad,
		BuildingName: "서울특별시청",
	}
	assert.Equal(t, "서울특별시 중구 세종대로 110 (서울특별시청)", r.DisplayAddress())
}

func TestDisplayAddress_RoadWithNoExtras(t *testing.T) {
	r := Result{Address: "서울특별시 중구 세종대로 110", AddressType: TypeRoad}
	assert.Equal(t, "서울특별시 중구 세종대로 110", r.DisplayAddress())
}

func TestDisplayAddress_LotNumberIgnoresExtras(t *testing.T) {
	r := Result{
		Address:      "서울특별시 중구 태평로1가 31",
		AddressType:  TypeLot,
		Bname:        "태평로1가",
		BuildingName: "서울특별시청",
	}
	assert.Equal(t, "서울특별시 중구 태평로1가 31", r.DisplayAddress())
}
