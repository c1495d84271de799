package repository

import "github.com/Melodious-nub/bnp-digital-backend/internal/domains/location/model"

// Reference data for the eight divisions and 64 districts of Bangladesh.
// IDs are fixed so imported spreadsheets stay stable across environments.
var seedDivisions = []model.Division{
	{ID: 1, Name: "Dhaka", BnName: "ঢাকা"},
	{ID: 2, Name: "Chattogram", BnName: "চট্টগ্রাম"},
	{ID: 3, Name: "Sylhet", BnName: "সিলেট"},
	{ID: 4, Name: "Khulna", BnName: "খুলনা"},
	{ID: 5, Name: "Barishal", BnName: "বরিশাল"},
	{ID: 6, Name: "Rajshahi", BnName: "রাজশাহী"},
	{ID: 7, Name: "Rangpur", BnName: "রংপুর"},
	{ID: 8, Name: "Mymensingh", BnName: "ময়মনসিংহ"},
}

var seedDistricts = []model.District{
	{ID: 1, DivisionID: 1, Name: "Dhaka", BnName: "ঢাকা"},
	{ID: 2, DivisionID: 1, Name: "Gazipur", BnName: "গাজীপুর"},
	{ID: 3, DivisionID: 1, Name: "Manikganj", BnName: "মানিকগঞ্জ"},
	{ID: 4, DivisionID: 1, Name: "Munshiganj", BnName: "মুন্সীগঞ্জ"},
	{ID: 5, DivisionID: 1, Name: "Narayanganj", BnName: "নারায়ণগঞ্জ"},
	{ID: 6, DivisionID: 1, Name: "Narsingdi", BnName: "নরসিংদী"},
	{ID: 7, DivisionID: 1, Name: "Faridpur", BnName: "ফরিদপুর"},
	{ID: 8, DivisionID: 1, Name: "Gopalganj", BnName: "গোপালগঞ্জ"},
	{ID: 9, DivisionID: 1, Name: "Madaripur", BnName: "মাদারীপুর"},
	{ID: 10, DivisionID: 1, Name: "Rajbari", BnName: "রাজবাড়ী"},
	{ID: 11, DivisionID: 1, Name: "Shariatpur", BnName: "শরীয়তপুর"},
	{ID: 12, DivisionID: 1, Name: "Kishoreganj", BnName: "কিশোরগঞ্জ"},
	{ID: 13, DivisionID: 1, Name: "Tangail", BnName: "টাঙ্গাইল"},
	{ID: 14, DivisionID: 8, Name: "Mymensingh", BnName: "ময়মনসিংহ"},
	{ID: 15, DivisionID: 8, Name: "Jamalpur", BnName: "জামালপুর"},
	{ID: 16, DivisionID: 8, Name: "Netrokona", BnName: "নেত্রকোণা"},
	{ID: 17, DivisionID: 8, Name: "Sherpur", BnName: "শেরপুর"},
	{ID: 18, DivisionID: 2, Name: "Chattogram", BnName: "চট্টগ্রাম"},
	{ID: 19, DivisionID: 2, Name: "Cox's Bazar", BnName: "কক্সবাজার"},
	{ID: 20, DivisionID: 2, Name: "Rangamati", BnName: "রাঙ্গামাটি"},
	{ID: 21, DivisionID: 2, Name: "Bandarban", BnName: "বান্দরবান"},
	{ID: 22, DivisionID: 2, Name: "Khagrachari", BnName: "খাগড়াছড়ি"},
	{ID: 23, DivisionID: 2, Name: "Noakhali", BnName: "নোয়াখালী"},
	{ID: 24, DivisionID: 2, Name: "Feni", BnName: "ফেনী"},
	{ID: 25, DivisionID: 2, Name: "Lakshmipur", BnName: "লক্ষ্মীপুর"},
	{ID: 26, DivisionID: 2, Name: "Cumilla", BnName: "কুমিল্লা"},
	{ID: 27, DivisionID: 2, Name: "Chandpur", BnName: "চাঁদপুর"},
	{ID: 28, DivisionID: 2, Name: "Brahmanbaria", BnName: "ব্রাহ্মণবাড়িয়া"},
	{ID: 29, DivisionID: 3, Name: "Sylhet", BnName: "সিলেট"},
	{ID: 30, DivisionID: 3, Name: "Moulivibazar", BnName: "মৌলভীবাজার"},
	{ID: 31, DivisionID: 3, Name: "Habiganj", BnName: "হবিগঞ্জ"},
	{ID: 32, DivisionID: 3, Name: "Sunamganj", BnName: "সুনামগঞ্জ"},
	{ID: 33, DivisionID: 4, Name: "Khulna", BnName: "খুলনা"},
	{ID: 34, DivisionID: 4, Name: "Bagerhat", BnName: "বাগেরহাট"},
	{ID: 35, DivisionID: 4, Name: "Satkhira", BnName: "সাতক্ষীরা"},
	{ID: 36, DivisionID: 4, Name: "Jashore", BnName: "যশোর"},
	{ID: 37, DivisionID: 4, Name: "Magura", BnName: "মাগুরা"},
	{ID: 38, DivisionID: 4, Name: "Narail", BnName: "নড়াইল"},
	{ID: 39, DivisionID: 4, Name: "Kushtia", BnName: "কুষ্টিয়া"},
	{ID: 40, DivisionID: 4, Name: "Jhenaidah", BnName: "ঝিনাইদহ"},
	{ID: 41, DivisionID: 4, Name: "Chuadanga", BnName: "চুয়াডাঙ্গা"},
	{ID: 42, DivisionID: 4, Name: "Meherpur", BnName: "মেহেরপুর"},
	{ID: 43, DivisionID: 5, Name: "Barishal", BnName: "বরিশাল"},
	{ID: 44, DivisionID: 5, Name: "Bhola", BnName: "ভোলা"},
	{ID: 45, DivisionID: 5, Name: "Patuakhali", BnName: "পটুয়াখালী"},
	{ID: 46, DivisionID: 5, Name: "Pirojpur", BnName: "পিরোজপুর"},
	{ID: 47, DivisionID: 5, Name: "Jhalokati", BnName: "ঝালকাঠি"},
	{ID: 48, DivisionID: 5, Name: "Barguna", BnName: "বরগুনা"},
	{ID: 49, DivisionID: 6, Name: "Rajshahi", BnName: "রাজশাহী"},
	{ID: 50, DivisionID: 6, Name: "Chapainawabganj", BnName: "চাঁপাইনবাবগঞ্জ"},
	{ID: 51, DivisionID: 6, Name: "Naogaon", BnName: "নওগাঁ"},
	{ID: 52, DivisionID: 6, Name: "Natore", BnName: "নাটোর"},
	{ID: 53, DivisionID: 6, Name: "Pabna", BnName: "পাবনা"},
	{ID: 54, DivisionID: 6, Name: "Sirajganj", BnName: "সিরাজগঞ্জ"},
	{ID: 55, DivisionID: 6, Name: "Bogura", BnName: "বগুড়া"},
	{ID: 56, DivisionID: 6, Name: "Joypurhat", BnName: "জয়পুরহাট"},
	{ID: 57, DivisionID: 7, Name: "Rangpur", BnName: "রংপুর"},
	{ID: 58, DivisionID: 7, Name: "Gaibandha", BnName: "গাইবান্ধা"},
	{ID: 59, DivisionID: 7, Name: "Kurigram", BnName: "কুড়িগ্রাম"},
	{ID: 60, DivisionID: 7, Name: "Nilphamari", BnName: "নীলফামারী"},
	{ID: 61, DivisionID: 7, Name: "Lalmonirhat", BnName: "লালমনিরহাট"},
	{ID: 62, DivisionID: 7, Name: "Dinajpur", BnName: "দিনাজপুর"},
	{ID: 63, DivisionID: 7, Name: "Thakurgaon", BnName: "ঠাকুরগাঁও"},
	{ID: 64, DivisionID: 7, Name: "Panchagarh", BnName: "পঞ্চগড়"},
}
