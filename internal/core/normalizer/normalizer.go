package normalizer

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"listing-service/internal/core/domain"

	"github.com/mmcloughlin/geohash"
)

const geohashPrecision = 9

// Вложенные объекты, в которых ищется значение, если в корне записи его нет
var fallbackContainers = []string{"raw_data", "raw_payload"}

// Normalizer превращает сырую запись фида в типизированный domain.Listing.
type Normalizer struct {
	limits TextLimits
}

func NewNormalizer(limits TextLimits) *Normalizer {
	return &Normalizer{limits: limits}
}

// Normalize отображает одну запись фида на колонки таблицы listings.
// Ошибка возвращается только если запись пуста (nil) или у нее нет ListingKey; все прочие
// проблемы со значениями попадают в диагностику и не прерывают обработку.
func (n *Normalizer) Normalize(raw domain.RawRecord) (*domain.Listing, []domain.Diagnostic, error) {
	if raw == nil {
		return nil, nil, fmt.Errorf("%w: record is not a JSON object", domain.ErrInvalidRecord)
	}
	m := &recordMapper{raw: raw, limits: n.limits}

	key, _ := ToBoundedString(m.resolve("ListingKey"), 0)
	if key == nil || strings.TrimSpace(*key) == "" {
		return nil, nil, domain.ErrMissingListingKey
	}

	payload, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: cannot encode raw payload: %v", domain.ErrInvalidRecord, err)
	}

	l := &domain.Listing{
		ListingKey: strings.TrimSpace(*key),
		ListingID:  trimmedText(m.text("ListingId", TextShort)),
		RawPayload: payload,
	}

	l.ListPrice = m.decimal("ListPrice")
	l.LivingArea = m.decimal("LivingArea")
	l.LotSizeArea = m.decimal("LotSizeArea")
	l.LotSizeSquareFeet = m.decimal("LotSizeSquareFeet")
	l.AssociationFee = m.decimal("AssociationFee")
	l.LandLeaseAmount = m.decimal("LandLeaseAmount")
	l.TaxAnnualAmount = m.decimal("TaxAnnualAmount")
	l.FoundationArea = m.decimal("FoundationArea")
	l.AboveGradeFinishedArea = m.decimal("AboveGradeFinishedArea")
	l.BelowGradeFinishedArea = m.decimal("BelowGradeFinishedArea")
	l.GarageSpaces = m.decimal("GarageSpaces")
	l.Latitude = m.decimal("Latitude")
	l.Longitude = m.decimal("Longitude")

	l.BedroomsTotal = m.integer("BedroomsTotal")
	l.BathroomsTotalInteger = m.integer("BathroomsTotalInteger")
	l.BathroomsFull = m.integer("BathroomsFull")
	l.BathroomsHalf = m.integer("BathroomsHalf")
	l.BathroomsThreeQuarter = m.integer("BathroomsThreeQuarter")
	l.BathroomsOneQuarter = m.integer("BathroomsOneQuarter")
	l.FireplacesTotal = m.integer("FireplacesTotal")
	l.DaysOnMarket = m.integer("DaysOnMarket")
	l.CumulativeDaysOnMarket = m.integer("CumulativeDaysOnMarket")
	l.PhotosCount = m.integer("PhotosCount")
	l.StreetNumberNumeric = m.integer("StreetNumberNumeric")
	l.TaxYear = m.integer("TaxYear")
	l.YearBuilt = m.integer("YearBuilt")

	l.WaterfrontYN = m.boolean("WaterfrontYN")
	l.AssociationYN = m.boolean("AssociationYN")
	l.BasementYN = m.boolean("BasementYN")
	l.FireplaceYN = m.boolean("FireplaceYN")
	l.NewConstructionYN = m.boolean("NewConstructionYN")
	l.LandLeaseYN = m.boolean("LandLeaseYN")
	l.PropertyAttachedYN = m.boolean("PropertyAttachedYN")
	l.AdditionalParcelsYN = m.boolean("AdditionalParcelsYN")
	l.InternetAddressDisplayYN = m.boolean("InternetAddressDisplayYN")
	l.InternetEntireListingDisplayYN = m.boolean("InternetEntireListingDisplayYN")
	l.InternetAutomatedValuationDisplayYN = m.boolean("InternetAutomatedValuationDisplayYN")
	l.InternetConsumerCommentYN = m.boolean("InternetConsumerCommentYN")
	l.MlgCanView = m.boolean("MlgCanView")

	l.Appliances = m.stringList("Appliances")
	l.AssociationFeeIncludes = m.stringList("AssociationFeeIncludes")
	l.Basement = m.stringList("Basement")
	l.Cooling = m.stringList("Cooling")
	l.Heating = m.stringList("Heating")
	l.Electric = m.stringList("Electric")
	l.ConstructionMaterials = m.stringList("ConstructionMaterials")
	l.Fencing = m.stringList("Fencing")
	l.FireplaceFeatures = m.stringList("FireplaceFeatures")
	l.RoadFrontageType = m.stringList("RoadFrontageType")
	l.ParkingFeatures = m.stringList("ParkingFeatures")
	l.AccessibilityFeatures = m.stringList("AccessibilityFeatures")
	l.LockBoxType = m.stringList("LockBoxType")
	l.PoolFeatures = m.stringList("PoolFeatures")
	l.RoadResponsibility = m.stringList("RoadResponsibility")
	l.Roof = m.stringList("Roof")
	l.RoomType = m.stringList("RoomType")
	l.Sewer = m.stringList("Sewer")
	l.WaterSource = m.stringList("WaterSource")
	l.Levels = m.stringList("Levels")
	l.MlgCanUse = m.stringList("MlgCanUse")

	l.ListingContractDate = m.timestamp("ListingContractDate")
	l.OriginalEntryTimestamp = m.timestamp("OriginalEntryTimestamp")
	l.ModificationTimestamp = m.timestamp("ModificationTimestamp")
	l.PhotosChangeTimestamp = m.timestamp("PhotosChangeTimestamp")
	l.NSTLastUpdateDate = m.timestamp("NST_LastUpdateDate")

	l.StateOrProvince = m.text("StateOrProvince", TextCode)
	l.PostalCode = m.text("PostalCode", TextCode)
	l.StreetSuffix = m.text("StreetSuffix", TextCode)
	l.NSTFractionalOwnershipYN = m.text("NST_FractionalOwnershipYN", TextCode)
	l.NSTLenderOwned = m.text("NST_LenderOwned", TextCode)
	l.NSTPotentialShortSale = m.text("NST_PotentialShortSale", TextCode)
	l.NSTRentalLicenseYN = m.text("NST_RentalLicenseYN", TextCode)
	l.NSTAssessmentPending = m.text("NST_AssessmentPending", TextCode)
	l.NSTManufacturedHome = m.text("NST_ManufacturedHome", TextCode)

	l.NSTAgentOwner = m.text("NST_AgentOwner", TextShort)
	l.NSTAgeOfProperty = m.text("NST_AgeOfProperty", TextShort)
	l.NSTAmenitiesUnit = m.text("NST_AmenitiesUnit", TextShort)
	l.NSTBathDesc = m.text("NST_BathDesc", TextShort)
	l.NSTConstructionMaterialsDesc = m.text("NST_ConstructionMaterialsDesc", TextShort)
	l.NSTDPResource = m.text("NST_DPResource", TextShort)
	l.NSTDiningRoomDescription = m.text("NST_DiningRoomDescription", TextShort)
	l.NSTForeclosureStatus = m.text("NST_ForeclosureStatus", TextShort)
	l.NSTFuel = m.text("NST_Fuel", TextShort)
	l.NSTGarageDimensions = m.text("NST_GarageDimensions", TextShort)
	l.NSTGarageSquareFeet = m.text("NST_GarageSquareFeet", TextShort)
	l.NSTOfficeBoard = m.text("NST_OfficeBoard", TextShort)
	l.NSTParkingOpen = m.text("NST_ParkingOpen", TextShort)
	l.NSTPowerCompanyName = m.text("NST_PowerCompanyName", TextShort)
	l.NSTPresentUse = m.text("NST_PresentUse", TextShort)
	l.NSTPropertySubTypeDesc = m.text("NST_PropertySubTypeDesc", TextShort)
	l.NSTRestrictions = m.text("NST_Restrictions", TextShort)
	l.NSTAboveGradeSqFtTotal = m.text("NST_AboveGradeSqFtTotal", TextShort)
	l.NSTBelowGradeSqFtTotal = m.text("NST_BelowGradeSqFtTotal", TextShort)
	l.NSTMainLevelFinishedArea = m.text("NST_MainLevelFinishedArea", TextShort)
	l.NSTSchoolDistrictNumber = m.text("NST_SchoolDistrictNumber", TextShort)
	l.NSTSchoolDistrictPhone = m.text("NST_SchoolDistrictPhone", TextShort)
	l.NSTTaxWithAssessments = m.text("NST_TaxWithAssessments", TextShort)
	l.StreetNumber = m.text("StreetNumber", TextShort)
	l.LotSizeUnits = m.text("LotSizeUnits", TextShort)
	l.AssociationFeeFrequency = m.text("AssociationFeeFrequency", TextShort)
	l.AssociationPhone = m.text("AssociationPhone", TextShort)
	l.ListAgentMlsID = m.text("ListAgentMlsId", TextShort)
	l.ListOfficeMlsID = m.text("ListOfficeMlsId", TextShort)
	l.PublicSurveyRange = m.text("PublicSurveyRange", TextShort)
	l.PublicSurveySection = m.text("PublicSurveySection", TextShort)
	l.PublicSurveyTownship = m.text("PublicSurveyTownship", TextShort)
	l.PropertyType = m.text("PropertyType", TextShort)
	l.PropertySubType = m.text("PropertySubType", TextShort)
	l.StandardStatus = m.text("StandardStatus", TextShort)
	l.Contingency = m.text("Contingency", TextShort)
	l.MapCoordinateSource = m.text("MapCoordinateSource", TextShort)
	l.SourceSystemName = m.text("SourceSystemName", TextShort)
	l.OriginatingSystemName = m.text("OriginatingSystemName", TextShort)

	l.City = m.text("City", TextMedium)
	l.StreetName = m.text("StreetName", TextMedium)
	l.PostalCity = m.text("PostalCity", TextMedium)
	l.CountyOrParish = m.text("CountyOrParish", TextMedium)
	l.SubdivisionName = m.text("SubdivisionName", TextMedium)
	l.ListAgentKey = m.text("ListAgentKey", TextMedium)
	l.ListOfficeKey = m.text("ListOfficeKey", TextMedium)
	l.ListOfficeName = m.text("ListOfficeName", TextMedium)
	l.ParcelNumber = m.text("ParcelNumber", TextMedium)
	l.ZoningDescription = m.text("ZoningDescription", TextMedium)
	l.HighSchoolDistrict = m.text("HighSchoolDistrict", TextMedium)
	l.AssociationName = m.text("AssociationName", TextMedium)
	l.LotSizeDimensions = m.text("LotSizeDimensions", TextMedium)

	l.PublicRemarks = m.text("PublicRemarks", TextLong)
	l.Directions = m.text("Directions", TextLong)

	// Производные колонки считаются по исходным значениям, а не по уже
	// приведенным колонкам
	l.PhotoURLs = m.photoURLs()
	l.Geohash = m.geohashCell()

	return l, m.diagnostics, nil
}

// recordMapper хранит состояние разбора одной записи.
type recordMapper struct {
	raw         domain.RawRecord
	limits      TextLimits
	diagnostics []domain.Diagnostic
}

// resolve ищет значение поля по цепочке: Field, field, raw_data.Field, raw_payload.Field.
func (m *recordMapper) resolve(field string) interface{} {
	candidates := make([]interface{}, 0, 2+len(fallbackContainers))
	candidates = append(candidates, m.raw[field])
	if lower := strings.ToLower(field); lower != field {
		candidates = append(candidates, m.raw[lower])
	}
	for _, container := range fallbackContainers {
		candidates = append(candidates, Lookup(m.raw, container, field))
	}
	return FirstNonNull(candidates...)
}

func (m *recordMapper) coercedToNull(field string, v interface{}, target string) {
	m.diagnostics = append(m.diagnostics, domain.Diagnostic{
		Column: columnName(field),
		Kind:   domain.DiagnosticCoercedToNull,
		Detail: fmt.Sprintf("cannot convert %T to %s", v, target),
	})
}

func (m *recordMapper) text(field string, group TextGroup) *string {
	v := m.resolve(field)
	if v == nil {
		return nil
	}
	limit := m.limits.Limit(group)
	s, truncated := ToBoundedString(v, limit)
	if s == nil {
		m.coercedToNull(field, v, "text")
		return nil
	}
	if truncated {
		m.diagnostics = append(m.diagnostics, domain.Diagnostic{
			Column: columnName(field),
			Kind:   domain.DiagnosticTruncated,
			Detail: fmt.Sprintf("truncated to %d characters (group %s)", limit, group),
		})
	}
	return s
}

// trimmedText убирает пробелы по краям; пустая строка становится NULL.
func trimmedText(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (m *recordMapper) integer(field string) *int64 {
	v := m.resolve(field)
	if v == nil {
		return nil
	}
	i := ToInteger(v)
	if i == nil {
		m.coercedToNull(field, v, "integer")
	}
	return i
}

func (m *recordMapper) decimal(field string) *float64 {
	v := m.resolve(field)
	if v == nil {
		return nil
	}
	f := ToDecimal(v)
	if f == nil {
		m.coercedToNull(field, v, "decimal")
	}
	return f
}

func (m *recordMapper) boolean(field string) *bool {
	v := m.resolve(field)
	if v == nil {
		return nil
	}
	b := ToBool(v)
	if b == nil {
		m.coercedToNull(field, v, "boolean")
	}
	return b
}

func (m *recordMapper) stringList(field string) []string {
	v := m.resolve(field)
	if v == nil {
		return nil
	}
	s := ToStringSlice(v)
	if s == nil {
		m.coercedToNull(field, v, "text[]")
	}
	return s
}

func (m *recordMapper) timestamp(field string) *time.Time {
	v := m.resolve(field)
	if v == nil {
		return nil
	}
	t := ToTimestamp(v)
	if t == nil {
		m.coercedToNull(field, v, "timestamp")
	}
	return t
}

// photoURLs собирает MediaURL из массива Media в исходном порядке.
func (m *recordMapper) photoURLs() []string {
	items, ok := m.resolve("Media").([]interface{})
	if !ok {
		return nil
	}
	urls := make([]string, 0, len(items))
	for _, item := range items {
		obj := asObject(item)
		if obj == nil {
			continue
		}
		if url, ok := obj["MediaURL"].(string); ok && strings.TrimSpace(url) != "" {
			urls = append(urls, url)
		}
	}
	if len(urls) == 0 {
		return nil
	}
	return urls
}

func (m *recordMapper) geohashCell() *string {
	lat := ToDecimal(m.resolve("Latitude"))
	lon := ToDecimal(m.resolve("Longitude"))
	if lat == nil || lon == nil {
		return nil
	}
	if *lat < -90 || *lat > 90 || *lon < -180 || *lon > 180 {
		return nil
	}
	hash := geohash.EncodeWithPrecision(*lat, *lon, geohashPrecision)
	return &hash
}

func columnName(field string) string {
	return strings.ToLower(field)
}
