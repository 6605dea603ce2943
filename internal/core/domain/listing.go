package domain

import (
	"encoding/json"
	"time"
)

// RawRecord - одна запись фида в том виде, в каком она пришла из источника.
// Ключи - имена полей фида, значения - нетипизированные JSON-значения.
type RawRecord map[string]interface{}

// Listing - нормализованная запись таблицы listings.
// Теги db совпадают с именами колонок и являются контрактом хранилища,
// теги json повторяют имена полей фида (RESO / NorthStar).
type Listing struct {
	ListingKey string  `json:"ListingKey" db:"listingkey"`
	ListingID  *string `json:"ListingId" db:"listingid"`

	// Цена, площади, суммы
	ListPrice              *float64 `json:"ListPrice" db:"listprice"`
	LivingArea             *float64 `json:"LivingArea" db:"livingarea"`
	LotSizeArea            *float64 `json:"LotSizeArea" db:"lotsizearea"`
	LotSizeSquareFeet      *float64 `json:"LotSizeSquareFeet" db:"lotsizesquarefeet"`
	AssociationFee         *float64 `json:"AssociationFee" db:"associationfee"`
	LandLeaseAmount        *float64 `json:"LandLeaseAmount" db:"landleaseamount"`
	TaxAnnualAmount        *float64 `json:"TaxAnnualAmount" db:"taxannualamount"`
	FoundationArea         *float64 `json:"FoundationArea" db:"foundationarea"`
	AboveGradeFinishedArea *float64 `json:"AboveGradeFinishedArea" db:"abovegradefinishedarea"`
	BelowGradeFinishedArea *float64 `json:"BelowGradeFinishedArea" db:"belowgradefinishedarea"`
	GarageSpaces           *float64 `json:"GarageSpaces" db:"garagespaces"`
	Latitude               *float64 `json:"Latitude" db:"latitude"`
	Longitude              *float64 `json:"Longitude" db:"longitude"`

	// Целочисленные счетчики
	BedroomsTotal          *int64 `json:"BedroomsTotal" db:"bedroomstotal"`
	BathroomsTotalInteger  *int64 `json:"BathroomsTotalInteger" db:"bathroomstotalinteger"`
	BathroomsFull          *int64 `json:"BathroomsFull" db:"bathroomsfull"`
	BathroomsHalf          *int64 `json:"BathroomsHalf" db:"bathroomshalf"`
	BathroomsThreeQuarter  *int64 `json:"BathroomsThreeQuarter" db:"bathroomsthreequarter"`
	BathroomsOneQuarter    *int64 `json:"BathroomsOneQuarter" db:"bathroomsonequarter"`
	FireplacesTotal        *int64 `json:"FireplacesTotal" db:"fireplacestotal"`
	DaysOnMarket           *int64 `json:"DaysOnMarket" db:"daysonmarket"`
	CumulativeDaysOnMarket *int64 `json:"CumulativeDaysOnMarket" db:"cumulativedaysonmarket"`
	PhotosCount            *int64 `json:"PhotosCount" db:"photoscount"`
	StreetNumberNumeric    *int64 `json:"StreetNumberNumeric" db:"streetnumbernumeric"`
	TaxYear                *int64 `json:"TaxYear" db:"taxyear"`
	YearBuilt              *int64 `json:"YearBuilt" db:"yearbuilt"`

	// Флаги
	WaterfrontYN                        *bool `json:"WaterfrontYN" db:"waterfrontyn"`
	AssociationYN                       *bool `json:"AssociationYN" db:"associationyn"`
	BasementYN                          *bool `json:"BasementYN" db:"basementyn"`
	FireplaceYN                         *bool `json:"FireplaceYN" db:"fireplaceyn"`
	NewConstructionYN                   *bool `json:"NewConstructionYN" db:"newconstructionyn"`
	LandLeaseYN                         *bool `json:"LandLeaseYN" db:"landleaseyn"`
	PropertyAttachedYN                  *bool `json:"PropertyAttachedYN" db:"propertyattachedyn"`
	AdditionalParcelsYN                 *bool `json:"AdditionalParcelsYN" db:"additionalparcelsyn"`
	InternetAddressDisplayYN            *bool `json:"InternetAddressDisplayYN" db:"internetaddressdisplayyn"`
	InternetEntireListingDisplayYN      *bool `json:"InternetEntireListingDisplayYN" db:"internetentirelistingdisplayyn"`
	InternetAutomatedValuationDisplayYN *bool `json:"InternetAutomatedValuationDisplayYN" db:"internetautomatedvaluationdisplayyn"`
	InternetConsumerCommentYN           *bool `json:"InternetConsumerCommentYN" db:"internetconsumercommentyn"`
	MlgCanView                          *bool `json:"MlgCanView" db:"mlgcanview"`

	// Категориальные массивы
	Appliances             []string `json:"Appliances" db:"appliances"`
	AssociationFeeIncludes []string `json:"AssociationFeeIncludes" db:"associationfeeincludes"`
	Basement               []string `json:"Basement" db:"basement"`
	Cooling                []string `json:"Cooling" db:"cooling"`
	Heating                []string `json:"Heating" db:"heating"`
	Electric               []string `json:"Electric" db:"electric"`
	ConstructionMaterials  []string `json:"ConstructionMaterials" db:"constructionmaterials"`
	Fencing                []string `json:"Fencing" db:"fencing"`
	FireplaceFeatures      []string `json:"FireplaceFeatures" db:"fireplacefeatures"`
	RoadFrontageType       []string `json:"RoadFrontageType" db:"roadfrontagetype"`
	ParkingFeatures        []string `json:"ParkingFeatures" db:"parkingfeatures"`
	AccessibilityFeatures  []string `json:"AccessibilityFeatures" db:"accessibilityfeatures"`
	LockBoxType            []string `json:"LockBoxType" db:"lockboxtype"`
	PoolFeatures           []string `json:"PoolFeatures" db:"poolfeatures"`
	RoadResponsibility     []string `json:"RoadResponsibility" db:"roadresponsibility"`
	Roof                   []string `json:"Roof" db:"roof"`
	RoomType               []string `json:"RoomType" db:"roomtype"`
	Sewer                  []string `json:"Sewer" db:"sewer"`
	WaterSource            []string `json:"WaterSource" db:"watersource"`
	Levels                 []string `json:"Levels" db:"levels"`
	MlgCanUse              []string `json:"MlgCanUse" db:"mlgcanuse"`

	// Даты
	ListingContractDate    *time.Time `json:"ListingContractDate" db:"listingcontractdate"`
	OriginalEntryTimestamp *time.Time `json:"OriginalEntryTimestamp" db:"originalentrytimestamp"`
	ModificationTimestamp  *time.Time `json:"ModificationTimestamp" db:"modificationtimestamp"`
	PhotosChangeTimestamp  *time.Time `json:"PhotosChangeTimestamp" db:"photoschangetimestamp"`
	NSTLastUpdateDate      *time.Time `json:"NST_LastUpdateDate" db:"nst_lastupdatedate"`

	// Короткие коды (группа code)
	StateOrProvince          *string `json:"StateOrProvince" db:"stateorprovince"`
	PostalCode               *string `json:"PostalCode" db:"postalcode"`
	StreetSuffix             *string `json:"StreetSuffix" db:"streetsuffix"`
	NSTFractionalOwnershipYN *string `json:"NST_FractionalOwnershipYN" db:"nst_fractionalownershipyn"`
	NSTLenderOwned           *string `json:"NST_LenderOwned" db:"nst_lenderowned"`
	NSTPotentialShortSale    *string `json:"NST_PotentialShortSale" db:"nst_potentialshortsale"`
	NSTRentalLicenseYN       *string `json:"NST_RentalLicenseYN" db:"nst_rentallicenseyn"`
	NSTAssessmentPending     *string `json:"NST_AssessmentPending" db:"nst_assessmentpending"`
	NSTManufacturedHome      *string `json:"NST_ManufacturedHome" db:"nst_manufacturedhome"`

	// Короткие строки (группа short)
	NSTAgentOwner                *string `json:"NST_AgentOwner" db:"nst_agentowner"`
	NSTAgeOfProperty             *string `json:"NST_AgeOfProperty" db:"nst_ageofproperty"`
	NSTAmenitiesUnit             *string `json:"NST_AmenitiesUnit" db:"nst_amenitiesunit"`
	NSTBathDesc                  *string `json:"NST_BathDesc" db:"nst_bathdesc"`
	NSTConstructionMaterialsDesc *string `json:"NST_ConstructionMaterialsDesc" db:"nst_constructionmaterialsdesc"`
	NSTDPResource                *string `json:"NST_DPResource" db:"nst_dpresource"`
	NSTDiningRoomDescription     *string `json:"NST_DiningRoomDescription" db:"nst_diningroomdescription"`
	NSTForeclosureStatus         *string `json:"NST_ForeclosureStatus" db:"nst_foreclosurestatus"`
	NSTFuel                      *string `json:"NST_Fuel" db:"nst_fuel"`
	NSTGarageDimensions          *string `json:"NST_GarageDimensions" db:"nst_garagedimensions"`
	NSTGarageSquareFeet          *string `json:"NST_GarageSquareFeet" db:"nst_garagesquarefeet"`
	NSTOfficeBoard               *string `json:"NST_OfficeBoard" db:"nst_officeboard"`
	NSTParkingOpen               *string `json:"NST_ParkingOpen" db:"nst_parkingopen"`
	NSTPowerCompanyName          *string `json:"NST_PowerCompanyName" db:"nst_powercompanyname"`
	NSTPresentUse                *string `json:"NST_PresentUse" db:"nst_presentuse"`
	NSTPropertySubTypeDesc       *string `json:"NST_PropertySubTypeDesc" db:"nst_propertysubtypedesc"`
	NSTRestrictions              *string `json:"NST_Restrictions" db:"nst_restrictions"`
	NSTAboveGradeSqFtTotal       *string `json:"NST_AboveGradeSqFtTotal" db:"nst_abovegradesqfttotal"`
	NSTBelowGradeSqFtTotal       *string `json:"NST_BelowGradeSqFtTotal" db:"nst_belowgradesqfttotal"`
	NSTMainLevelFinishedArea     *string `json:"NST_MainLevelFinishedArea" db:"nst_mainlevelfinishedarea"`
	NSTSchoolDistrictNumber      *string `json:"NST_SchoolDistrictNumber" db:"nst_schooldistrictnumber"`
	NSTSchoolDistrictPhone       *string `json:"NST_SchoolDistrictPhone" db:"nst_schooldistrictphone"`
	NSTTaxWithAssessments        *string `json:"NST_TaxWithAssessments" db:"nst_taxwithassessments"`
	StreetNumber                 *string `json:"StreetNumber" db:"streetnumber"`
	LotSizeUnits                 *string `json:"LotSizeUnits" db:"lotsizeunits"`
	AssociationFeeFrequency      *string `json:"AssociationFeeFrequency" db:"associationfeefrequency"`
	AssociationPhone             *string `json:"AssociationPhone" db:"associationphone"`
	ListAgentMlsID               *string `json:"ListAgentMlsId" db:"listagentmlsid"`
	ListOfficeMlsID              *string `json:"ListOfficeMlsId" db:"listofficemlsid"`
	PublicSurveyRange            *string `json:"PublicSurveyRange" db:"publicsurveyrange"`
	PublicSurveySection          *string `json:"PublicSurveySection" db:"publicsurveysection"`
	PublicSurveyTownship         *string `json:"PublicSurveyTownship" db:"publicsurveytownship"`
	PropertyType                 *string `json:"PropertyType" db:"propertytype"`
	PropertySubType              *string `json:"PropertySubType" db:"propertysubtype"`
	StandardStatus               *string `json:"StandardStatus" db:"standardstatus"`
	Contingency                  *string `json:"Contingency" db:"contingency"`
	MapCoordinateSource          *string `json:"MapCoordinateSource" db:"mapcoordinatesource"`
	SourceSystemName             *string `json:"SourceSystemName" db:"sourcesystemname"`
	OriginatingSystemName        *string `json:"OriginatingSystemName" db:"originatingsystemname"`

	// Адрес, участники сделки (группа medium)
	City               *string `json:"City" db:"city"`
	StreetName         *string `json:"StreetName" db:"streetname"`
	PostalCity         *string `json:"PostalCity" db:"postalcity"`
	CountyOrParish     *string `json:"CountyOrParish" db:"countyorparish"`
	SubdivisionName    *string `json:"SubdivisionName" db:"subdivisionname"`
	ListAgentKey       *string `json:"ListAgentKey" db:"listagentkey"`
	ListOfficeKey      *string `json:"ListOfficeKey" db:"listofficekey"`
	ListOfficeName     *string `json:"ListOfficeName" db:"listofficename"`
	ParcelNumber       *string `json:"ParcelNumber" db:"parcelnumber"`
	ZoningDescription  *string `json:"ZoningDescription" db:"zoningdescription"`
	HighSchoolDistrict *string `json:"HighSchoolDistrict" db:"highschooldistrict"`
	AssociationName    *string `json:"AssociationName" db:"associationname"`
	LotSizeDimensions  *string `json:"LotSizeDimensions" db:"lotsizedimensions"`

	// Длинные тексты без ограничения
	PublicRemarks *string `json:"PublicRemarks" db:"publicremarks"`
	Directions    *string `json:"Directions" db:"directions"`

	// Производные от исходной записи колонки
	PhotoURLs []string `json:"PhotoURLs" db:"photourls"`
	Geohash   *string  `json:"Geohash" db:"geohash"`

	RawPayload json.RawMessage `json:"raw_payload" db:"raw_payload"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}

// UpsertOutcome - результат записи одной нормализованной записи.
type UpsertOutcome struct {
	Created   bool
	UpdatedAt time.Time
}
