package postgres

import (
	"listing-service/internal/core/domain"
)

const listingsTable = "listings"

// listingColumns - все записываемые колонки таблицы listings в порядке полей
// domain.Listing. updated_at назначается сервером и сюда не входит.
var listingColumns = []string{
	"listingkey",
	"listingid",
	"listprice",
	"livingarea",
	"lotsizearea",
	"lotsizesquarefeet",
	"associationfee",
	"landleaseamount",
	"taxannualamount",
	"foundationarea",
	"abovegradefinishedarea",
	"belowgradefinishedarea",
	"garagespaces",
	"latitude",
	"longitude",
	"bedroomstotal",
	"bathroomstotalinteger",
	"bathroomsfull",
	"bathroomshalf",
	"bathroomsthreequarter",
	"bathroomsonequarter",
	"fireplacestotal",
	"daysonmarket",
	"cumulativedaysonmarket",
	"photoscount",
	"streetnumbernumeric",
	"taxyear",
	"yearbuilt",
	"waterfrontyn",
	"associationyn",
	"basementyn",
	"fireplaceyn",
	"newconstructionyn",
	"landleaseyn",
	"propertyattachedyn",
	"additionalparcelsyn",
	"internetaddressdisplayyn",
	"internetentirelistingdisplayyn",
	"internetautomatedvaluationdisplayyn",
	"internetconsumercommentyn",
	"mlgcanview",
	"appliances",
	"associationfeeincludes",
	"basement",
	"cooling",
	"heating",
	"electric",
	"constructionmaterials",
	"fencing",
	"fireplacefeatures",
	"roadfrontagetype",
	"parkingfeatures",
	"accessibilityfeatures",
	"lockboxtype",
	"poolfeatures",
	"roadresponsibility",
	"roof",
	"roomtype",
	"sewer",
	"watersource",
	"levels",
	"mlgcanuse",
	"listingcontractdate",
	"originalentrytimestamp",
	"modificationtimestamp",
	"photoschangetimestamp",
	"nst_lastupdatedate",
	"stateorprovince",
	"postalcode",
	"streetsuffix",
	"nst_fractionalownershipyn",
	"nst_lenderowned",
	"nst_potentialshortsale",
	"nst_rentallicenseyn",
	"nst_assessmentpending",
	"nst_manufacturedhome",
	"nst_agentowner",
	"nst_ageofproperty",
	"nst_amenitiesunit",
	"nst_bathdesc",
	"nst_constructionmaterialsdesc",
	"nst_dpresource",
	"nst_diningroomdescription",
	"nst_foreclosurestatus",
	"nst_fuel",
	"nst_garagedimensions",
	"nst_garagesquarefeet",
	"nst_officeboard",
	"nst_parkingopen",
	"nst_powercompanyname",
	"nst_presentuse",
	"nst_propertysubtypedesc",
	"nst_restrictions",
	"nst_abovegradesqfttotal",
	"nst_belowgradesqfttotal",
	"nst_mainlevelfinishedarea",
	"nst_schooldistrictnumber",
	"nst_schooldistrictphone",
	"nst_taxwithassessments",
	"streetnumber",
	"lotsizeunits",
	"associationfeefrequency",
	"associationphone",
	"listagentmlsid",
	"listofficemlsid",
	"publicsurveyrange",
	"publicsurveysection",
	"publicsurveytownship",
	"propertytype",
	"propertysubtype",
	"standardstatus",
	"contingency",
	"mapcoordinatesource",
	"sourcesystemname",
	"originatingsystemname",
	"city",
	"streetname",
	"postalcity",
	"countyorparish",
	"subdivisionname",
	"listagentkey",
	"listofficekey",
	"listofficename",
	"parcelnumber",
	"zoningdescription",
	"highschooldistrict",
	"associationname",
	"lotsizedimensions",
	"publicremarks",
	"directions",
	"photourls",
	"geohash",
	"raw_payload",
}

// selectColumns - колонки, которые читаются обратно в domain.Listing.
var selectColumns = append(append([]string{}, listingColumns...), "updated_at")

// listingValues возвращает значения в порядке listingColumns.
func listingValues(l *domain.Listing) []interface{} {
	return []interface{}{
		l.ListingKey,
		l.ListingID,
		l.ListPrice,
		l.LivingArea,
		l.LotSizeArea,
		l.LotSizeSquareFeet,
		l.AssociationFee,
		l.LandLeaseAmount,
		l.TaxAnnualAmount,
		l.FoundationArea,
		l.AboveGradeFinishedArea,
		l.BelowGradeFinishedArea,
		l.GarageSpaces,
		l.Latitude,
		l.Longitude,
		l.BedroomsTotal,
		l.BathroomsTotalInteger,
		l.BathroomsFull,
		l.BathroomsHalf,
		l.BathroomsThreeQuarter,
		l.BathroomsOneQuarter,
		l.FireplacesTotal,
		l.DaysOnMarket,
		l.CumulativeDaysOnMarket,
		l.PhotosCount,
		l.StreetNumberNumeric,
		l.TaxYear,
		l.YearBuilt,
		l.WaterfrontYN,
		l.AssociationYN,
		l.BasementYN,
		l.FireplaceYN,
		l.NewConstructionYN,
		l.LandLeaseYN,
		l.PropertyAttachedYN,
		l.AdditionalParcelsYN,
		l.InternetAddressDisplayYN,
		l.InternetEntireListingDisplayYN,
		l.InternetAutomatedValuationDisplayYN,
		l.InternetConsumerCommentYN,
		l.MlgCanView,
		l.Appliances,
		l.AssociationFeeIncludes,
		l.Basement,
		l.Cooling,
		l.Heating,
		l.Electric,
		l.ConstructionMaterials,
		l.Fencing,
		l.FireplaceFeatures,
		l.RoadFrontageType,
		l.ParkingFeatures,
		l.AccessibilityFeatures,
		l.LockBoxType,
		l.PoolFeatures,
		l.RoadResponsibility,
		l.Roof,
		l.RoomType,
		l.Sewer,
		l.WaterSource,
		l.Levels,
		l.MlgCanUse,
		l.ListingContractDate,
		l.OriginalEntryTimestamp,
		l.ModificationTimestamp,
		l.PhotosChangeTimestamp,
		l.NSTLastUpdateDate,
		l.StateOrProvince,
		l.PostalCode,
		l.StreetSuffix,
		l.NSTFractionalOwnershipYN,
		l.NSTLenderOwned,
		l.NSTPotentialShortSale,
		l.NSTRentalLicenseYN,
		l.NSTAssessmentPending,
		l.NSTManufacturedHome,
		l.NSTAgentOwner,
		l.NSTAgeOfProperty,
		l.NSTAmenitiesUnit,
		l.NSTBathDesc,
		l.NSTConstructionMaterialsDesc,
		l.NSTDPResource,
		l.NSTDiningRoomDescription,
		l.NSTForeclosureStatus,
		l.NSTFuel,
		l.NSTGarageDimensions,
		l.NSTGarageSquareFeet,
		l.NSTOfficeBoard,
		l.NSTParkingOpen,
		l.NSTPowerCompanyName,
		l.NSTPresentUse,
		l.NSTPropertySubTypeDesc,
		l.NSTRestrictions,
		l.NSTAboveGradeSqFtTotal,
		l.NSTBelowGradeSqFtTotal,
		l.NSTMainLevelFinishedArea,
		l.NSTSchoolDistrictNumber,
		l.NSTSchoolDistrictPhone,
		l.NSTTaxWithAssessments,
		l.StreetNumber,
		l.LotSizeUnits,
		l.AssociationFeeFrequency,
		l.AssociationPhone,
		l.ListAgentMlsID,
		l.ListOfficeMlsID,
		l.PublicSurveyRange,
		l.PublicSurveySection,
		l.PublicSurveyTownship,
		l.PropertyType,
		l.PropertySubType,
		l.StandardStatus,
		l.Contingency,
		l.MapCoordinateSource,
		l.SourceSystemName,
		l.OriginatingSystemName,
		l.City,
		l.StreetName,
		l.PostalCity,
		l.CountyOrParish,
		l.SubdivisionName,
		l.ListAgentKey,
		l.ListOfficeKey,
		l.ListOfficeName,
		l.ParcelNumber,
		l.ZoningDescription,
		l.HighSchoolDistrict,
		l.AssociationName,
		l.LotSizeDimensions,
		l.PublicRemarks,
		l.Directions,
		l.PhotoURLs,
		l.Geohash,
		l.RawPayload,
	}
}
